package services

import (
	"context"
	"sync"
)

// FakeService records inputs and returns the configured Result and Err.
type FakeService[T any, S any] struct {
	Result S
	Err    error
	Inputs []T
	lock   sync.Mutex
}

func NewFakeService[T any, S any](result S, err error) *FakeService[T, S] {
	return &FakeService[T, S]{Result: result, Err: err}
}

func (s *FakeService[T, S]) Run(ctx context.Context, input T) (S, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Inputs = append(s.Inputs, input)
	return s.Result, s.Err
}

func (s *FakeService[T, S]) WasCalled() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Inputs) > 0
}

func (s *FakeService[T, S]) LastInput() T {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.Inputs[len(s.Inputs)-1]
}

func (s *FakeService[T, S]) CallCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Inputs)
}
