package service

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// maxMergeDepth bounds how deeply nested an incoming analysis patch may be.
const maxMergeDepth = 16

// ErrPatchTooDeep indicates an analysis patch nested beyond the allowed depth.
var ErrPatchTooDeep = errors.New("analysis patch exceeds maximum nesting depth")

// DeepMerge combines patch into base additively: nested objects are merged
// key-by-key, scalars are overwritten by the patch, and arrays are replaced
// wholesale (never appended). Neither input is mutated. Merging the same
// patch twice yields the same result as merging it once.
func DeepMerge(base, patch map[string]any) (map[string]any, error) {
	if mapDepth(patch, 1) > maxMergeDepth {
		return nil, ErrPatchTooDeep
	}

	out := cloneMap(base)
	if out == nil {
		out = map[string]any{}
	}
	if err := mergo.Merge(&out, patch, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge analysis data: %w", err)
	}
	return out, nil
}

func mapDepth(m map[string]any, current int) int {
	deepest := current
	for _, v := range m {
		if nested, ok := v.(map[string]any); ok {
			if d := mapDepth(nested, current+1); d > deepest {
				deepest = d
			}
		}
	}
	return deepest
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch typed := v.(type) {
		case map[string]any:
			out[k] = cloneMap(typed)
		case []any:
			cloned := make([]any, len(typed))
			copy(cloned, typed)
			out[k] = cloned
		default:
			out[k] = v
		}
	}
	return out
}
