package transforms

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/ironsheep/easycv/internal/errs"
	"github.com/ironsheep/easycv/internal/ocr"
	"github.com/ironsheep/easycv/internal/selector"
)

// Registry maps transform names to transforms. It is safe for concurrent
// use.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry returns a registry holding every built-in transform. sel backs
// the select transform and engine the ocr transform.
func NewRegistry(sel selector.Selector, engine ocr.Engine) *Registry {
	r := &Registry{transforms: make(map[string]Transform)}

	for _, t := range []Transform{
		NewBlur(),
		NewSharpen(),
		NewSharpness(),
		NewGradient(),
		NewGradientMagnitude(),
		NewGradientAngle(),
		NewCanny(),
		NewGrayscale(),
		NewFilterChannels(),
		NewGammaCorrection(),
		NewNegative(),
		NewConvertColor(),
		NewDominantColors(),
		NewCrop(),
		NewResize(),
		NewRotate(),
		NewFlip(),
		NewDraw(),
		NewSelect(sel),
		NewOCR(engine),
	} {
		r.Register(t)
	}

	return r
}

// Register adds t. It panics if a transform with the same name exists.
func (r *Registry) Register(t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transforms[t.Name()]; ok {
		panic(fmt.Sprintf("transforms: duplicate transform %q", t.Name()))
	}
	r.transforms[t.Name()] = t
}

// Lookup returns the transform called name.
func (r *Registry) Lookup(name string) (Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transforms[name]
	if !ok {
		return nil, &errs.UnknownTransformError{Name: name}
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.transforms)
	sort.Strings(names)
	return names
}

// All returns the registered transforms sorted by name.
func (r *Registry) All() []Transform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := lo.Values(r.transforms)
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}
