package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PipelineStateTestSuite struct {
	suite.Suite
}

func TestPipelineStateTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineStateTestSuite))
}

func (s *PipelineStateTestSuite) TestNext_FollowsSuccessPath() {
	s.Equal(StateVersionChecked, StateInit.Next())
	s.Equal(StateLoaded, StateVersionChecked.Next())
	s.Equal(StateValidated, StateLoaded.Next())
	s.Equal(StateCoerced, StateValidated.Next())
	s.Equal(StateAggregated, StateCoerced.Next())
	s.Equal(StateWritten, StateAggregated.Next())
	s.Equal(StateDone, StateWritten.Next())
}

func (s *PipelineStateTestSuite) TestIsTerminal() {
	s.True(StateDone.IsTerminal())
	s.True(StateFailed.IsTerminal())
	s.False(StateInit.IsTerminal())
	s.False(StateWritten.IsTerminal())
}

func (s *PipelineStateTestSuite) TestAllowedTransition() {
	testCases := []struct {
		name    string
		from    PipelineState
		to      PipelineState
		allowed bool
	}{
		{"forward step", StateInit, StateVersionChecked, true},
		{"failure from any stage", StateValidated, StateFailed, true},
		{"failure from init", StateInit, StateFailed, true},
		{"skipping a stage", StateInit, StateLoaded, false},
		{"moving backwards", StateLoaded, StateVersionChecked, false},
		{"leaving done", StateDone, StateFailed, false},
		{"leaving failed", StateFailed, StateInit, false},
		{"final step", StateWritten, StateDone, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.allowed, AllowedTransition(tc.from, tc.to))
		})
	}
}

func (s *PipelineStateTestSuite) TestRunResult_Succeeded() {
	s.True((&RunResult{State: StateDone}).Succeeded())
	s.False((&RunResult{State: StateFailed}).Succeeded())
	s.False((&RunResult{State: StateWritten}).Succeeded())

	var nilResult *RunResult
	s.False(nilResult.Succeeded())
}
