package roster_test

import (
	"errors"
	"testing"

	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDirectory(t *testing.T) {
	Convey("Given an empty directory", t, func() {
		dir := roster.NewDirectory()

		Convey("When looking up an unknown id", func() {
			_, err := dir.Lookup(42)

			Convey("Then it should return ErrNotFound", func() {
				So(errors.Is(err, roster.ErrNotFound), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "42")
			})
		})

		Convey("When registering a player", func() {
			dir.Register(7, "Alice", model.TeamOne)
			p, err := dir.Lookup(7)

			Convey("Then lookup returns the name and team", func() {
				So(err, ShouldBeNil)
				So(p, ShouldResemble, model.Player{ID: 7, Name: "Alice", Team: model.TeamOne})
				So(dir.Len(), ShouldEqual, 1)
			})
		})

		Convey("When registering the same id twice", func() {
			dir.Register(7, "Alice", model.TeamOne)
			dir.Register(7, "Zed", model.TeamTwo)
			p, _ := dir.Lookup(7)

			Convey("Then the last registration wins", func() {
				So(p.Name, ShouldEqual, "Zed")
				So(p.Team, ShouldEqual, model.TeamTwo)
				So(dir.Len(), ShouldEqual, 1)
			})
		})
	})
}

func TestParseEntry(t *testing.T) {
	Convey("Given roster lines", t, func() {
		Convey("When the line is well formed", func() {
			e, err := roster.ParseEntry("12 Mary Jane")

			Convey("Then the name keeps everything after the first space", func() {
				So(err, ShouldBeNil)
				So(e, ShouldResemble, model.RosterEntry{ID: 12, Name: "Mary Jane"})
			})
		})

		Convey("When the line has surrounding whitespace and a tab", func() {
			e, err := roster.ParseEntry("  3\t Bob  \r")

			Convey("Then the name is trimmed", func() {
				So(err, ShouldBeNil)
				So(e, ShouldResemble, model.RosterEntry{ID: 3, Name: "Bob"})
			})
		})

		Convey("When the id is not a number", func() {
			_, err := roster.ParseEntry("x Bob")
			So(errors.Is(err, roster.ErrMalformedEntry), ShouldBeTrue)
		})

		Convey("When the name is missing", func() {
			_, err := roster.ParseEntry("5")
			So(errors.Is(err, roster.ErrMalformedEntry), ShouldBeTrue)
		})
	})
}
