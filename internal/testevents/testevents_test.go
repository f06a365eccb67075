package testevents

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/tagscore/pkg/logger"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

func testConfig(dir string) *Config {
	return &Config{
		OutputDir:      dir,
		TeamAName:      DefaultTeamAName,
		TeamBName:      DefaultTeamBName,
		PlayersPerTeam: 4,
		Hits:           40,
		Seed:           7,
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a generator config", t, func() {
		ctx := context.Background()
		config := testConfig(t.TempDir())

		Convey("When generating a match", func() {
			stats := &Stats{}
			f, err := Generate(ctx, config, stats)
			So(err, ShouldBeNil)

			Convey("Then rosters and hits have the requested sizes", func() {
				So(f.TeamA.Players, ShouldHaveLength, 4)
				So(f.TeamB.Players, ShouldHaveLength, 4)
				So(f.Hits, ShouldHaveLength, 40)
				So(stats.PlayersGenerated, ShouldEqual, 8)
				So(stats.HitsGenerated, ShouldEqual, 40)
			})

			Convey("Then every hit crosses teams and the clock moves forward", func() {
				last := 0
				for _, h := range f.Hits {
					So(f.Expected[h.Shooter].Team, ShouldNotEqual, f.Expected[h.Target].Team)
					So(h.AtMillis, ShouldBeGreaterThan, last)
					last = h.AtMillis
				}
			})

			Convey("Then expected scores add up to the team totals", func() {
				var sums [2]int
				for _, r := range f.Expected {
					sums[r.Team-1] += r.Score
				}
				So(sums, ShouldResemble, f.Totals)
			})

			Convey("Then the same seed reproduces the match", func() {
				again, err := Generate(ctx, config, &Stats{})
				So(err, ShouldBeNil)
				So(again.Hits, ShouldResemble, f.Hits)
				So(again.TeamA, ShouldResemble, f.TeamA)
				So(again.RunID, ShouldNotEqual, f.RunID)
			})
		})

		Convey("When the config has no players", func() {
			config.PlayersPerTeam = 0
			_, err := Generate(ctx, config, &Stats{})
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestExpectedRanking(t *testing.T) {
	Convey("Given expected results with a tag tie", t, func() {
		r := Roster{Players: []Player{{ID: 9}, {ID: 3}, {ID: 5}}}
		expected := map[int]PlayerResult{
			9: {Tags: 2},
			3: {Tags: 1},
			5: {Tags: 2},
		}
		So(expectedRanking(r, expected), ShouldResemble, []int{5, 9, 3})
	})
}

func TestRun(t *testing.T) {
	Convey("Given an output directory", t, func() {
		ctx := context.Background()
		config := testConfig(t.TempDir())
		config.Verify = true

		Convey("When running with verification", func() {
			stats, err := Run(ctx, config)

			Convey("Then the engine agrees with the generated expectations", func() {
				So(err, ShouldBeNil)
				So(stats.PlayersChecked, ShouldEqual, 8)
				So(stats.EndTime.Before(stats.StartTime), ShouldBeFalse)
			})

			Convey("Then the match file starts with its declared count", func() {
				data, err := os.ReadFile(filepath.Join(config.OutputDir, MatchFile))
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				So(lines[0], ShouldEqual, "40")
				So(lines, ShouldHaveLength, 41)
			})
		})
	})
}
