// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views holds the templ components for the pages themegate serves.

Components are built on the templ runtime with templ.ComponentFunc, so the
package needs no generate step. Dynamic values only reach the output through
Text and Attr, which escape them.
*/
package views
