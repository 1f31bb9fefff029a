// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package util

import "sync"

// IntDedupeMap is a reusable "seen" set for cycle-safe graph walks (class
// inheritance, instance search). Get a fresh one with NewIntDedupeMap and return it
// to the pool with Release when done.
type IntDedupeMap map[int]bool

var dedupePool = sync.Pool{
	New: func() interface{} { return IntDedupeMap(make(map[int]bool, 16)) },
}

// NewIntDedupeMap returns an empty IntDedupeMap, reused from a pool when possible.
func NewIntDedupeMap() IntDedupeMap { return dedupePool.Get().(IntDedupeMap) }

// Release clears the map and returns it to the pool.
func (m IntDedupeMap) Release() {
	for k := range m {
		delete(m, k)
	}
	dedupePool.Put(m)
}
