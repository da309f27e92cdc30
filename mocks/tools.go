//go:build tools

package mocks

import _ "github.com/maxbrunsfeld/counterfeiter/v6"
