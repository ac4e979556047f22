// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter provides rate limiting for incoming requests.

Clients are grouped by network (a configurable IPv4/IPv6 prefix) and each
network gets a token bucket. Requests over the limit get 429 Too Many Requests.
*/
package limiter
