// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Text renders s as escaped HTML text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))

		return err
	})
}

// Attr renders a double-quoted attribute with an escaped value.
//
// name must be a constant.
func Attr(name, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, " "+name+`="`+templ.EscapeString(value)+`"`)

		return err
	})
}

// static renders constant markup.
func static(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)

		return err
	})
}

// Element renders <tag>children</tag>. tag must be a constant.
func Element(tag string, children ...templ.Component) templ.Component {
	return sequence(append(append([]templ.Component{static("<" + tag + ">")}, children...), static("</"+tag+">"))...)
}

// sequence renders components one after another.
func sequence(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		return nil
	})
}
