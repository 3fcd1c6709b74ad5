package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func reset(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		_ = SetFormat("text")
		_ = SetLevelString("info")
		_ = Init()
	})
	return buf
}

func TestLoggerText(t *testing.T) {
	Convey("Given a text logger at info level", t, func() {
		buf := reset(t)
		So(SetFormat("text"), ShouldBeNil)
		So(SetLevelString("info"), ShouldBeNil)
		So(Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When a named child logs with fields", func() {
			Named("api").Named("pft").Info(ctx, "scored", String("class", "First"), Int("total", 236), Bool("passed", true))

			Convey("Then the name, fields and source are written", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "msg=scored")
				So(out, ShouldContainSubstring, "logger=api.pft")
				So(out, ShouldContainSubstring, "class=First")
				So(out, ShouldContainSubstring, "total=236")
				So(out, ShouldContainSubstring, "passed=true")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When a debug line is logged", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then it is filtered", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})
	})
}

func TestLoggerJSON(t *testing.T) {
	Convey("Given a JSON logger at debug level", t, func() {
		buf := reset(t)
		So(SetFormat("JSON"), ShouldBeNil)
		So(SetLevelString("debug"), ShouldBeNil)
		So(Init(), ShouldBeNil)

		Get().Debug(context.Background(), "queued", Error(errors.New("boom")))

		Convey("Then each line is a JSON object", func() {
			var rec map[string]any
			So(json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec), ShouldBeNil)
			So(rec["msg"], ShouldEqual, "queued")
			So(rec["error"], ShouldEqual, "boom")
		})
	})
}

func TestLoggerSettings(t *testing.T) {
	Convey("Given invalid settings", t, func() {
		Convey("Then unknown levels and formats are rejected", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
			So(SetFormat("xml"), ShouldNotBeNil)
		})

		Convey("Then Sync never fails", func() {
			So(Sync(), ShouldBeNil)
		})
	})
}
