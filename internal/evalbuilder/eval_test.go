package evalbuilder

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
	"github.com/treechess/treechess/pkg/engine"
)

func TestGet(t *testing.T) {
	var p = common.NewInitialPosition()
	for _, key := range []string{"", "heuristic", "material"} {
		var e, ok = Get(key, zerolog.Nop())().(engine.Evaluator)
		if !ok {
			t.Fatalf("%q is not an evaluator", key)
		}
		if score := e.Evaluate(&p, common.White); score < -1e-9 || score > 1e-9 {
			t.Error(key, score)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	Get("nnue", zerolog.Nop())()
}
