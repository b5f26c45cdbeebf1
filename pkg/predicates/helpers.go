package predicates

// toInt converts a value produced by a constrainedrandom domain (usually
// int, but occasionally another integer-ish type) into an int, the
// common currency every numeric predicate here operates in.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	default:
		return 0, false
	}
}

func toInts(vs []any) ([]int, bool) {
	out := make([]int, len(vs))
	for i, v := range vs {
		n, ok := toInt(v)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func valuesOf(values map[string]any, names []string) ([]any, bool) {
	out := make([]any, len(names))
	for i, n := range names {
		v, ok := values[n]
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
