// Package mocks holds counterfeiter fakes of the meigit interfaces. Run
// go generate ./... after changing an interface.
package mocks
