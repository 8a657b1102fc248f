package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CommandTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(&bytes.Buffer{})

	// flag values persist between executions of the same command tree
	generateCollisionMode = "endpoint"
	simulateCollisionMode = "segment"
	simulateFrames = 600
	simulateRegenerate = 0
	simulateRandomStart = false
}

func (s *CommandTestSuite) execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func (s *CommandTestSuite) TestGenerate() {
	s.Require().NoError(s.execute("generate", "--log-level", "warn"))

	out := s.out.String()
	s.Contains(out, "Rooms (5):")
	s.Contains(out, "Walls (6):")
	s.Contains(out, "Meshes (11, 34 triangles, 11 buffers uploaded):")
	s.Contains(out, "wall-living-bedroom")
	s.NotContains(out, "Build failures")
}

func (s *CommandTestSuite) TestSimulate() {
	s.Require().NoError(s.execute("simulate", "--frames", "120", "--regenerate-every", "50", "--log-level", "warn"))

	out := s.out.String()
	s.Contains(out, "Simulated 120 frames (segment collision)")
	s.Contains(out, "regenerations:   2")
	s.Contains(out, "frames drawn:    120")
	s.Contains(out, "draw calls:      11 per frame, 34 triangles")
}

func (s *CommandTestSuite) TestSimulateRandomStart() {
	s.Require().NoError(s.execute("simulate", "--frames", "30", "--random-start", "--log-level", "warn"))

	out := s.out.String()
	s.Contains(out, "frames drawn:    30")
	s.Contains(out, "regenerations:   0")
}

func (s *CommandTestSuite) TestRollStartAngle() {
	angle, err := rollStartAngle(fixedRoller{value: 91})
	s.Require().NoError(err)
	s.InDelta(math.Pi/2, angle, 1e-5)

	angle, err = rollStartAngle(fixedRoller{value: 1})
	s.Require().NoError(err)
	s.Zero(angle)
}

type fixedRoller struct {
	value int
}

func (r fixedRoller) Roll(_ int) (int, error) { return r.value, nil }

func (r fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

func (s *CommandTestSuite) TestInvalidFlags() {
	s.Error(s.execute("generate", "--collision-mode", "exact", "--log-level", "warn"))
	s.Error(s.execute("simulate", "--frames", "-1", "--log-level", "warn"))
	s.Error(s.execute("generate", "--log-level", "loud"))
}
