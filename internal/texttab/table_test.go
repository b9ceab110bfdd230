// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	check := func(s string, a align, w int, full bool, want string) {
		t.Helper()
		got := a.pad(s, w, full)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, false, "abc")
	check("abc", alignLeft, 5, true, "abc  ")
	check("abc", alignCenter, 10, false, "   abc")
	check("abc", alignCenter, 10, true, "   abc    ")
	check("abc", alignRight, 6, false, "   abc")
	check("☃", alignRight, 4, false, "   ☃")
	check("toolong", alignRight, 3, true, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Padding without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a    b    c\nxxx xxx xxx\n")

	// Missing cells at the end and blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a\n\nd e f\n")

	// Spans widen their last column.
	tab.Row().Cell("a").Cell("b")
	tab.Row().Span(2, "abcdefg")
	check("a b\nabcdefg\n")
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Span(3, "Flags:")
	check("a b c\nFlags:\n")

	// Styled cells are padded to full width before decoration.
	bracket := Style(func(s string) string { return "[" + s + "]" })
	tab.Row().Cell("x").Cell("1", bracket).Cell("2", bracket)
	tab.Row().Cell("y").Cell("100").Cell("200")
	check("x [1  ] [2  ]\ny 100 200\n")

	// Styled empty cells are still printed.
	tab.Row().Cell("x").Cell("", bracket, Right)
	tab.Row().Cell("y").Cell("abc")
	check("x [   ]\ny abc\n")
}
