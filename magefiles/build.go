//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Dev mg.Namespace

// Test runs the unit tests. The renderer packages need no GL context.
func (Dev) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Vet runs go vet over every package.
func (Dev) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Tidy prunes go.mod and go.sum.
func (Dev) Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}

// Check vets, then tests.
func (Dev) Check() {
	mg.SerialDeps(Dev.Vet, Dev.Test)
}
