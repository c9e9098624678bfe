package dice

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RollerTestSuite struct {
	suite.Suite
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestSameSeedSameSequence() {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 20; i++ {
		s.Equal(a.Intn(100), b.Intn(100))
		s.Equal(a.Float64(), b.Float64())
	}
}

func (s *RollerTestSuite) TestIntnBounds() {
	r := New(&Config{Seed: 7})

	for i := 0; i < 200; i++ {
		v := r.Intn(5)
		s.GreaterOrEqual(v, 0)
		s.Less(v, 5)
	}
	s.Equal(0, r.Intn(0))
	s.Equal(0, r.Intn(-3))
}

func (s *RollerTestSuite) TestShuffleKeepsElements() {
	r := New(&Config{Seed: 3})
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	s.ElementsMatch([]int{1, 2, 3, 4, 5, 6, 7, 8}, items)
}

func (s *RollerTestSuite) TestNilConfigUsesTimeSeed() {
	r := New(nil)
	s.NotNil(r)
	f := r.Float64()
	s.GreaterOrEqual(f, 0.0)
	s.Less(f, 1.0)
}
