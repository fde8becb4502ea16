package attributes

import (
	"math"

	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func registerBuiltins(r *Registry) {
	r.Register("number", "round", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		n := recv.(runtime.NumberLiteral)
		return runtime.NumberLiteral{Value: math.Round(n.Value), Position: n.Position}, nil
	})
	r.Register("number", "abs", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		n := recv.(runtime.NumberLiteral)
		return runtime.NumberLiteral{Value: math.Abs(n.Value), Position: n.Position}, nil
	})

	r.Register("text", "length", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		t := recv.(runtime.TextLiteral)
		return runtime.NumberLiteral{Value: float64(len([]rune(t.Value))), Position: t.Position}, nil
	})

	// Text.upper()/lower() use golang.org/x/text/cases for locale-aware
	// casing rather than a hand-rolled strings.ToUpper/ToLower.
	r.Register("text", "upper", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		t := recv.(runtime.TextLiteral)
		c := cases.Upper(language.Und)
		return runtime.TextLiteral{Value: c.String(t.Value), Position: t.Position}, nil
	})
	r.Register("text", "lower", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		t := recv.(runtime.TextLiteral)
		c := cases.Lower(language.Und)
		return runtime.TextLiteral{Value: c.String(t.Value), Position: t.Position}, nil
	})

	// Text.hash() produces a bcrypt digest, the standard "hash this text"
	// stdlib routine a scripting language ships (grounded on MongooseMoo-barn's
	// password-hashing dependency stack).
	r.Register("text", "hash", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		t := recv.(runtime.TextLiteral)
		digest, err := bcrypt.GenerateFromPassword([]byte(t.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, rerrors.New(rerrors.InternalError, t.Position, "hash: %v", err)
		}
		return runtime.TextLiteral{Value: string(digest), Position: t.Position}, nil
	})

	// Text.json(:path:) parses the receiver as JSON and extracts path,
	// mapping the result back to the nearest QuackScript primitive kind.
	r.Register("text", "json", func(recv runtime.Value, args []runtime.Value, _ host.System) (runtime.Value, error) {
		t := recv.(runtime.TextLiteral)
		if len(args) != 1 {
			return nil, rerrors.New(rerrors.ArityMismatch, t.Position, "json: expected 1 argument, got %d", len(args))
		}
		path, ok := args[0].(runtime.TextLiteral)
		if !ok {
			return nil, rerrors.New(rerrors.ArgumentTypeMismatch, t.Position, "json: path argument must be text")
		}
		result := gjson.Get(t.Value, path.Value)
		if !result.Exists() {
			return runtime.NothingLiteral{Position: t.Position}, nil
		}
		switch result.Type {
		case gjson.Number:
			return runtime.NumberLiteral{Value: result.Float(), Position: t.Position}, nil
		case gjson.True, gjson.False:
			return runtime.BooleanLiteral{Value: result.Bool(), Position: t.Position}, nil
		default:
			return runtime.TextLiteral{Value: result.String(), Position: t.Position}, nil
		}
	})

	r.Register("bool", "negate", func(recv runtime.Value, _ []runtime.Value, _ host.System) (runtime.Value, error) {
		b := recv.(runtime.BooleanLiteral)
		return runtime.BooleanLiteral{Value: !b.Value, Position: b.Position}, nil
	})
}
