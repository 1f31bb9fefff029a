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

package types

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{
			varNames:    make(map[*Variable]string, 8),
			paramNames:  make(map[*Param]string, 8),
			regionNames: make(map[Region]string, 8),
		}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) release() {
	for k := range p.varNames {
		delete(p.varNames, k)
	}
	for k := range p.paramNames {
		delete(p.paramNames, k)
	}
	for k := range p.regionNames {
		delete(p.regionNames, k)
	}
	p.varCount, p.paramCount, p.regionCount = 0, 0, 0
	p.sb.Reset()
	printerPool.Put(p)
}

// typePrinter holds the fresh-name tables for one TypeString/RegionString call.
// Variables, Params and Regions each get their own naming sequence, since their
// rendered forms are distinguished by prefix (?, ', none) and can't collide.
type typePrinter struct {
	varNames    map[*Variable]string
	paramNames  map[*Param]string
	regionNames map[Region]string

	varCount, paramCount, regionCount int
	sb                                strings.Builder
}

// freshName assigns the i'th name in the a-z sequence; names beyond z collapse to
// "_", matching the pretty-printer's fixed alphabet.
func freshName(i int) string {
	if i < 26 {
		return string(byte('a' + i))
	}
	return "_"
}

func (p *typePrinter) varName(v *Variable) string {
	if name, ok := p.varNames[v]; ok {
		return name
	}
	name := freshName(p.varCount)
	p.varCount++
	p.varNames[v] = name
	return name
}

func (p *typePrinter) paramName(pm *Param) string {
	if name, ok := p.paramNames[pm]; ok {
		return name
	}
	name := freshName(p.paramCount)
	p.paramCount++
	p.paramNames[pm] = name
	return name
}

func (p *typePrinter) regionName(r Region) string {
	if name, ok := p.regionNames[r]; ok {
		return name
	}
	name := freshName(p.regionCount)
	p.regionCount++
	p.regionNames[r] = name
	return name
}

func isFunctionType(t Type) bool {
	_, ok := Solved(t).(*Function)
	return ok
}

// TypeString renders t using the fixed pretty-printer conventions: `name` for
// Base, `?v` for an unsolved Variable, `'v` for a Param, `: C1, C2` for either's
// constraint set, `:ClassName` per member of a TypeClass, `&` plus ` at r` for a
// Ref's region, and parentheses around the parameter side of `->` only when that
// side is itself a Function.
func TypeString(t Type) string {
	p := newTypePrinter()
	p.writeType(t, false)
	s := p.sb.String()
	p.release()
	return s
}

// RegionString renders a Region using its own fresh-name table; intended for
// diagnostics and tests that need to name a region independently of any Type it
// appears in.
func RegionString(r Region) string {
	p := newTypePrinter()
	p.writeRegion(SolvedRegion(r))
	s := p.sb.String()
	p.release()
	return s
}

func (p *typePrinter) writeType(t Type, parenIfFunction bool) {
	switch t := Solved(t).(type) {
	case *Base:
		p.sb.WriteString(t.Name)

	case *Function:
		if parenIfFunction {
			p.sb.WriteByte('(')
		}
		p.writeType(t.ParamType, isFunctionType(t.ParamType))
		p.sb.WriteString(" -> ")
		p.writeType(t.ReturnType, false)
		if parenIfFunction {
			p.sb.WriteByte(')')
		}

	case *Variable:
		p.sb.WriteByte('?')
		p.sb.WriteString(p.varName(t))
		p.writeConstraints(t.Constraints)

	case *Param:
		p.sb.WriteByte('\'')
		p.sb.WriteString(p.paramName(t))
		p.writeConstraints(t.Constraints)

	case *TypeClass:
		p.writeClassList(t.Classes)
		p.sb.WriteString(" at ")
		p.writeRegion(SolvedRegion(t.Region))

	case *Ref:
		p.writeType(t.Type, isFunctionType(t.Type))
		p.sb.WriteByte('&')
		p.sb.WriteString(" at ")
		p.writeRegion(SolvedRegion(t.Region))
	}
}

func (p *typePrinter) writeConstraints(cs Constraints) {
	list := cs.List()
	if len(list) == 0 {
		return
	}
	p.sb.WriteString(": ")
	for i, c := range list {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(c.Name)
	}
}

func (p *typePrinter) writeClassList(cs Constraints) {
	for i, c := range cs.List() {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteByte(':')
		p.sb.WriteString(c.Name)
	}
}

func (p *typePrinter) writeRegion(r Region) {
	switch r := r.(type) {
	case RegionTemporary:
		p.sb.WriteString(p.regionName(r))
	case *RegionBase:
		p.sb.WriteString(p.regionName(r))
	case *RegionVariable:
		p.sb.WriteString(p.regionName(r))
	case *RegionParam:
		p.sb.WriteString(p.regionName(r))
	}
}
