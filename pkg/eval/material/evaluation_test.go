package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

func TestMaterialEvaluation(t *testing.T) {
	var e = NewEvaluationService(zerolog.Nop())

	var p = common.NewInitialPosition()
	var tests = []struct {
		material [2]int
		side     common.Color
		want     float64
	}{
		{[2]int{42, 42}, common.White, 0},
		{[2]int{12, 3}, common.White, 0.6},
		{[2]int{12, 3}, common.Black, -0.6},
		{[2]int{1, 0}, common.White, 0.99},
		{[2]int{0, 1}, common.White, -0.99},
		{[2]int{0, 0}, common.Black, 0},
	}
	for _, test := range tests {
		p.Material = test.material
		if score := e.Evaluate(&p, test.side); score != test.want {
			t.Errorf("%v %v: got %v want %v", test.material, test.side, score, test.want)
		}
	}
	if e.Clamps() != 2 {
		t.Error(e.Clamps())
	}
}

func TestMaterialClampIsLogged(t *testing.T) {
	var buf = &bytes.Buffer{}
	var e = NewEvaluationService(zerolog.New(buf).Level(zerolog.DebugLevel))

	// a captured king leaves [mover]=1, [other]=0
	var p = common.NewInitialPosition()
	p.Material = [2]int{1, 0}
	if score := e.Evaluate(&p, common.Black); score != -0.99 {
		t.Error(score)
	}
	if e.Clamps() != 1 {
		t.Error(e.Clamps())
	}
	if !strings.Contains(buf.String(), "evaluation clamped") {
		t.Error(buf.String())
	}
}
