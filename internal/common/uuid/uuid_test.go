package uuid

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UUIDTestSuite struct {
	suite.Suite
	generator *DefaultUUID
}

func TestUUIDTestSuite(t *testing.T) {
	suite.Run(t, new(UUIDTestSuite))
}

func (s *UUIDTestSuite) SetupTest() {
	s.generator = New()
}

func (s *UUIDTestSuite) TestVersionSeven() {
	parsed, err := uuid.Parse(s.generator.NewUUID())

	s.Require().NoError(err)
	s.Equal(uuid.Version(7), parsed.Version())
}

func (s *UUIDTestSuite) TestIDsSortByCreation() {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = s.generator.NewUUID()
	}

	s.True(sort.StringsAreSorted(ids))

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
