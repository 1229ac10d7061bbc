package scene

// fields wraps one decoded figure entry with typed accessors. Every accessor
// fails with a *fieldError naming the field.
type fields map[string]any

func (f fields) has(name string) bool {
	v, ok := f[name]
	return ok && v != nil
}

func (f fields) lookup(name string) (any, error) {
	v, ok := f[name]
	if !ok || v == nil {
		return nil, &fieldError{field: name, missing: true}
	}
	return v, nil
}

func (f fields) num(name string) (float64, error) {
	v, err := f.lookup(name)
	if err != nil {
		return 0, err
	}
	n, ok := number(v)
	if !ok {
		return 0, &fieldError{field: name, reason: "must be a number"}
	}
	return n, nil
}

// size is a non-negative number.
func (f fields) size(name string) (float64, error) {
	n, err := f.num(name)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &fieldError{field: name, reason: "must not be negative"}
	}
	return n, nil
}

func (f fields) str(name string) (string, error) {
	v, err := f.lookup(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &fieldError{field: name, reason: "must be a string"}
	}
	return s, nil
}

func (f fields) pos() (Pos, error) {
	x, err := f.num("x")
	if err != nil {
		return Pos{}, err
	}
	y, err := f.num("y")
	if err != nil {
		return Pos{}, err
	}
	return Pos{X: x, Y: y}, nil
}

func (f fields) points(name string) ([]Pos, error) {
	v, err := f.lookup(name)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, &fieldError{field: name, reason: "must be a non-empty list of [x, y] pairs"}
	}
	out := make([]Pos, 0, len(list))
	for _, item := range list {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, &fieldError{field: name, reason: "must be a non-empty list of [x, y] pairs"}
		}
		x, okX := number(pair[0])
		y, okY := number(pair[1])
		if !okX || !okY {
			return nil, &fieldError{field: name, reason: "coordinates must be numbers"}
		}
		out = append(out, Pos{X: x, Y: y})
	}
	return out, nil
}

// number accepts the numeric types produced by the JSON and YAML decoders.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
