package audit

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry keeps the explicit list of change-tracked fields per model.
// Modules register their tracked fields at composition time; consumers may
// inspect the registry but this module never reads audit data back.
type Registry struct {
	mu      sync.RWMutex
	tracked map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{
		tracked: make(map[string][]string),
	}
}

func (r *Registry) Register(model string, fields ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tracked[model] = append(r.tracked[model], fields...)
}

func (r *Registry) TrackedFields(model string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields := make([]string, len(r.tracked[model]))
	copy(fields, r.tracked[model])

	return fields
}

func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.tracked))
	for model := range r.tracked {
		models = append(models, model)
	}
	sort.Strings(models)

	return models
}

// Changed emits a fire-and-forget audit entry for the fields that are
// actually tracked on the model.
func (r *Registry) Changed(model string, id uint, fields ...string) {
	r.mu.RLock()
	registered := r.tracked[model]
	r.mu.RUnlock()

	if len(registered) == 0 {
		return
	}

	isTracked := make(map[string]bool, len(registered))
	for _, f := range registered {
		isTracked[f] = true
	}

	var changed []string
	for _, f := range fields {
		if isTracked[f] {
			changed = append(changed, f)
		}
	}
	if len(changed) == 0 {
		return
	}

	zap.L().Info("audit",
		zap.String("model", model),
		zap.Uint("id", id),
		zap.Strings("fields", changed),
	)
}
