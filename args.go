package tcap

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/tcap/terminfo/param"
)

// ErrArgument reports a render argument of an unsupported type or one that
// cannot be encoded for the terminal.
var ErrArgument = errors.New("invalid argument")

func (t *Terminal) values(args []any) ([]param.Value, error) {
	if len(args) > param.NumParams {
		return nil, fmt.Errorf("%w: got %d, at most %d", param.ErrTooManyArgs, len(args), param.NumParams)
	}
	values := make([]param.Value, len(args))
	for i, arg := range args {
		v, err := t.value(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

func (t *Terminal) value(arg any) (param.Value, error) {
	switch v := arg.(type) {
	case param.Value:
		return v, nil
	case uint8:
		return param.Char(v), nil
	case int:
		return param.Int(v), nil
	case int8:
		return param.Int(int(v)), nil
	case int16:
		return param.Int(int(v)), nil
	case int32:
		return param.Int(int(v)), nil
	case int64:
		return param.Int(int(v)), nil
	case uint:
		return param.Int(int(v)), nil
	case uint16:
		return param.Int(int(v)), nil
	case uint32:
		return param.Int(int(v)), nil
	case uint64:
		return param.Int(int(v)), nil
	case bool:
		if v {
			return param.Int(1), nil
		}
		return param.Int(0), nil
	case string:
		return t.text(v)
	case []byte:
		return t.text(string(v))
	default:
		return param.Value{}, fmt.Errorf("%w: unsupported type %T", ErrArgument, arg)
	}
}

func (t *Terminal) text(s string) (param.Value, error) {
	if t.enc == nil {
		return param.Text(s), nil
	}
	out, err := t.enc.NewEncoder().String(s)
	if err != nil {
		t.log.Warn("text argument not representable", "terminal", t.desc.Name, "text", s, "error", err)
		return param.Value{}, fmt.Errorf("%w: %q: %v", ErrArgument, s, err)
	}
	return param.Text(out), nil
}
