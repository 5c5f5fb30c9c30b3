package rules

import (
	"github.com/battlesnakeio/snake/model"
	"github.com/battlesnakeio/snake/random"
)

// PlaceFood picks a random interior cell that the snake does not cover,
// resampling on every hit. If sampling keeps hitting the snake it falls back
// to choosing among the free cells directly, and reports false when there
// are none left.
func PlaceFood(width, height int, s *model.Snake, rng random.Source) (model.Block, bool) {
	attempts := (width - 2) * (height - 2)
	for i := 0; i < attempts; i++ {
		p := model.Block{
			X: random.Range(rng, 1, width-1),
			Y: random.Range(rng, 1, height-1),
		}
		if !s.BadTouch(p) {
			return p, true
		}
	}
	return getUnoccupiedPoint(width, height, s, rng)
}

func getUnoccupiedPoint(width, height int, s *model.Snake, rng random.Source) (model.Block, bool) {
	openPoints := getUnoccupiedPoints(width, height, s)

	if len(openPoints) == 0 {
		return model.Block{}, false
	}

	return openPoints[rng.Intn(len(openPoints))], true
}

func getUnoccupiedPoints(width, height int, s *model.Snake) []model.Block {
	candidatePoints := []model.Block{}

	for x := 1; x < width-1; x++ {
		for y := 1; y < height-1; y++ {
			p := model.Block{X: x, Y: y}
			if !s.BadTouch(p) {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}
