package file_test

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/tagscore/internal/adapters/file"
	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/roster"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseRoster(t *testing.T) {
	convey.Convey("Given roster text", t, func() {
		convey.Convey("When it is well formed", func() {
			spec, err := file.ParseRoster(strings.NewReader("Red Team\r\n2\r\n1 Alice\r\n2 Bob Smith\r\n"))

			convey.Convey("Then name, count and entries are parsed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(spec.Name, convey.ShouldEqual, "Red Team")
				convey.So(spec.Declared, convey.ShouldEqual, 2)
				convey.So(spec.Entries, convey.ShouldResemble, []model.RosterEntry{
					{ID: 1, Name: "Alice"},
					{ID: 2, Name: "Bob Smith"},
				})
			})
		})

		convey.Convey("When lines follow the declared players", func() {
			spec, err := file.ParseRoster(strings.NewReader("Red\n1\n1 Alice\nnot a player line\n"))

			convey.Convey("Then they are ignored", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(spec.Entries, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When fewer players are listed than declared", func() {
			spec, err := file.ParseRoster(strings.NewReader("Red\n3\n1 Alice\n"))

			convey.Convey("Then parsing succeeds and team construction rejects it", func() {
				convey.So(err, convey.ShouldBeNil)
				_, terr := roster.NewTeam(model.TeamOne, spec, roster.NewDirectory())
				convey.So(errors.Is(terr, roster.ErrShortRoster), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When records are malformed", func() {
			for _, in := range []string{"", "Red\n", "Red\nmany\n", "Red\n-1\n", "Red\n1\nAlice 1\n"} {
				_, err := file.ParseRoster(strings.NewReader(in))
				convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
			}
		})

		convey.Convey("When a player line exceeds the scanner limit", func() {
			in := "Red\n1\n1 " + strings.Repeat("A", bufio.MaxScanTokenSize) + "\n"
			_, err := file.ParseRoster(strings.NewReader(in))

			convey.Convey("Then it is a malformed record, not a missing file", func() {
				convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
				convey.So(errors.Is(err, bufio.ErrTooLong), convey.ShouldBeTrue)
				convey.So(errors.Is(err, file.ErrMissingFile), convey.ShouldBeFalse)
			})
		})
	})
}

func TestParseMatch(t *testing.T) {
	convey.Convey("Given match text", t, func() {
		convey.Convey("When it is well formed", func() {
			spec, err := file.ParseMatch(strings.NewReader("3\n1 3 100 1\n3 1 200 2\n\n1  3\t300 3\n"))

			convey.Convey("Then every hit is parsed in order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(spec.Declared, convey.ShouldEqual, 3)
				convey.So(spec.Events, convey.ShouldHaveLength, 3)
				convey.So(spec.Events[1], convey.ShouldResemble, model.HitEvent{
					ShooterID: 3, TargetID: 1, At: 200 * time.Millisecond, Location: 2,
				})
				convey.So(spec.Events[2].Location, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When there are more hits than declared", func() {
			spec, err := file.ParseMatch(strings.NewReader("1\n1 3 100 1\n3 1 200 2\n"))

			convey.Convey("Then all lines are returned for the engine to reject", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(spec.Events, convey.ShouldHaveLength, 2)
			})
		})

		convey.Convey("When a hit line is malformed", func() {
			for _, in := range []string{"", "x\n", "2\n1 3 100\n", "1\n1 3 100 1 9\n", "1\n1 b 100 1\n"} {
				_, err := file.ParseMatch(strings.NewReader(in))
				convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
			}
		})

		convey.Convey("When the count line exceeds the scanner limit", func() {
			in := strings.Repeat("1", bufio.MaxScanTokenSize+1) + "\n"
			_, err := file.ParseMatch(strings.NewReader(in))

			convey.Convey("Then it is a malformed record, not a missing file", func() {
				convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
				convey.So(errors.Is(err, file.ErrMissingFile), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a hit line exceeds the scanner limit", func() {
			in := "1\n1 3 100 " + strings.Repeat("1", bufio.MaxScanTokenSize) + "\n"
			_, err := file.ParseMatch(strings.NewReader(in))
			convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
			convey.So(errors.Is(err, file.ErrMissingFile), convey.ShouldBeFalse)
		})
	})
}

func TestReadFiles(t *testing.T) {
	convey.Convey("Given files on disk", t, func() {
		dir := t.TempDir()

		convey.Convey("When the roster file is missing", func() {
			_, err := file.ReadRoster(filepath.Join(dir, "nope.txt"))
			convey.So(errors.Is(err, file.ErrMissingFile), convey.ShouldBeTrue)
		})

		convey.Convey("When the match file is missing", func() {
			_, err := file.ReadMatch(filepath.Join(dir, "nope.txt"))
			convey.So(errors.Is(err, file.ErrMissingFile), convey.ShouldBeTrue)
		})

		convey.Convey("When the files exist", func() {
			rosterPath := filepath.Join(dir, "red.txt")
			matchPath := filepath.Join(dir, "match.txt")
			convey.So(os.WriteFile(rosterPath, []byte("Red\n1\n1 Alice\n"), 0o600), convey.ShouldBeNil)
			convey.So(os.WriteFile(matchPath, []byte("1\n1 3 100 4\n"), 0o600), convey.ShouldBeNil)

			spec, err := file.ReadRoster(rosterPath)
			convey.So(err, convey.ShouldBeNil)
			convey.So(spec.Name, convey.ShouldEqual, "Red")

			match, err := file.ReadMatch(matchPath)
			convey.So(err, convey.ShouldBeNil)
			convey.So(match.Events[0].Location, convey.ShouldEqual, 4)
		})

		convey.Convey("When a malformed file is read", func() {
			path := filepath.Join(dir, "bad.txt")
			convey.So(os.WriteFile(path, []byte("Red\nlots\n"), 0o600), convey.ShouldBeNil)
			_, err := file.ReadRoster(path)

			convey.Convey("Then the error names the file", func() {
				convey.So(errors.Is(err, file.ErrMalformedRecord), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, path)
			})
		})
	})
}

func TestWriteReport(t *testing.T) {
	convey.Convey("Given report lines", t, func() {
		lines := []string{"Blue: 8 points.", "Red: 15 points.", "Overall Winners: Red"}

		convey.Convey("When writing to a buffer", func() {
			var buf bytes.Buffer
			convey.So(file.WriteLines(&buf, lines), convey.ShouldBeNil)

			convey.Convey("Then each line is newline terminated", func() {
				convey.So(buf.String(), convey.ShouldEqual, "Blue: 8 points.\nRed: 15 points.\nOverall Winners: Red\n")
			})
		})

		convey.Convey("When writing to a file", func() {
			path := filepath.Join(t.TempDir(), "out.txt")
			convey.So(os.WriteFile(path, []byte("stale content that is longer\n"), 0o600), convey.ShouldBeNil)
			convey.So(file.WriteReport(path, lines), convey.ShouldBeNil)

			convey.Convey("Then the file is replaced", func() {
				got, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(got), convey.ShouldEqual, "Blue: 8 points.\nRed: 15 points.\nOverall Winners: Red\n")
			})
		})

		convey.Convey("When the output directory does not exist", func() {
			err := file.WriteReport(filepath.Join(t.TempDir(), "missing", "out.txt"), lines)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
