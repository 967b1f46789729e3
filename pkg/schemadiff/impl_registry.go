/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import "github.com/voedger/schemadiff/pkg/schema"

// Registers flatten strategy for custom attribute class with specified full name.
//
// Registered strategy is replaced. Nil strategy removes registration.
func (r *Registry) Register(classFullName string, s FlattenStrategy) *Registry {
	k := schema.NameKey(classFullName)
	if s == nil {
		delete(r.strategies, k)
		return r
	}
	r.strategies[k] = s
	return r
}

// Returns flatten strategy for custom attribute class. Returns DefaultFlatten if none registered.
func (r *Registry) Strategy(classFullName string) FlattenStrategy {
	if s, ok := r.strategies[schema.NameKey(classFullName)]; ok {
		return s
	}
	return DefaultFlatten
}
