// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the request preprocessing steps of themegate.

Each step is a Middleware. The router chains them in the order given by
(*router.Router).RegisterMiddleware, outermost first.
*/
package middleware
