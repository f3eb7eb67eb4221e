package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type LoginLimiterTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	limiter *LoginLimiter
	ctx     context.Context
}

func (s *LoginLimiterTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.limiter = NewLoginLimiter(s.client)
	s.ctx = context.Background()
}

func (s *LoginLimiterTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestLoginLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(LoginLimiterTestSuite))
}

func (s *LoginLimiterTestSuite) TestAllowsFreshIP() {
	allowed, err := s.limiter.Allow(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *LoginLimiterTestSuite) TestBlocksAfterThreshold() {
	ip := "10.0.0.2"
	for i := 0; i < loginAttemptLimit-1; i++ {
		s.Require().NoError(s.limiter.RecordFailure(s.ctx, ip))
	}

	allowed, err := s.limiter.Allow(s.ctx, ip)
	s.Require().NoError(err)
	s.True(allowed, "one failure short of the limit is still allowed")

	s.Require().NoError(s.limiter.RecordFailure(s.ctx, ip))
	allowed, err = s.limiter.Allow(s.ctx, ip)
	s.Require().NoError(err)
	s.False(allowed)

	// Other IPs are unaffected.
	allowed, err = s.limiter.Allow(s.ctx, "10.0.0.3")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *LoginLimiterTestSuite) TestWindowExpires() {
	ip := "10.0.0.4"
	for i := 0; i < loginAttemptLimit; i++ {
		s.Require().NoError(s.limiter.RecordFailure(s.ctx, ip))
	}

	allowed, err := s.limiter.Allow(s.ctx, ip)
	s.Require().NoError(err)
	s.False(allowed)

	s.mr.FastForward(loginAttemptWindow)

	allowed, err = s.limiter.Allow(s.ctx, ip)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *LoginLimiterTestSuite) TestResetClearsCounter() {
	ip := "10.0.0.5"
	for i := 0; i < loginAttemptLimit; i++ {
		s.Require().NoError(s.limiter.RecordFailure(s.ctx, ip))
	}
	s.Require().NoError(s.limiter.Reset(s.ctx, ip))

	allowed, err := s.limiter.Allow(s.ctx, ip)
	s.Require().NoError(err)
	s.True(allowed)
}
