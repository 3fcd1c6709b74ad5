package types_test

import (
	"testing"

	"github.com/okian/proctor/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseBoard(t *testing.T) {
	Convey("Given board names", t, func() {
		Convey("When the name is known", func() {
			b, err := types.ParseBoard("CFT")
			So(err, ShouldBeNil)
			So(b, ShouldEqual, types.BoardCFT)
		})

		Convey("When the name is empty", func() {
			b, err := types.ParseBoard("")
			So(err, ShouldBeNil)
			So(b, ShouldEqual, types.BoardPFT)
		})

		Convey("When the name is unknown", func() {
			_, err := types.ParseBoard("ift")
			So(err, ShouldNotBeNil)
		})

		Convey("Then every listed board parses to itself", func() {
			for _, b := range types.Boards {
				got, err := types.ParseBoard(string(b))
				So(err, ShouldBeNil)
				So(got, ShouldEqual, b)
			}
		})
	})
}
