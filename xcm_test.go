package xcm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type XcmTestSuite struct {
	suite.Suite
	Ctx context.Context
}

func (s *XcmTestSuite) SetupTest() {
	s.Ctx = context.Background()
}

func TestXcm(t *testing.T) {
	suite.Run(t, new(XcmTestSuite))
}
