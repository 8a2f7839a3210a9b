// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// sectionKeywords are the uppercase lines that introduce a new record
// section in the line-oriented model file format.
var sectionKeywords = map[string]bool{
	"LOADCASES":    true,
	"COMBINATIONS": true,
	"MATERIALS":    true,
	"SECTIONS":     true,
	"NODES":        true,
	"MEMBERS":      true,
}

// sectionCtors indexes section type ids to their constructor, in the
// file-format order: generic, circle, rectangle, symI, asymI.
var sectionCtors = []func(name string, p []float64) *Section{
	func(name string, p []float64) *Section { return Generic(name, p[0], p[1], p[2], p[3]) },
	func(name string, p []float64) *Section { return Circle(name, p[0], p[1]) },
	func(name string, p []float64) *Section { return Rectangle(name, p[0], p[1]) },
	func(name string, p []float64) *Section { return SymmetricI(name, p[0], p[1], p[2], p[3]) },
	func(name string, p []float64) *Section { return AsymmetricI(name, p[0], p[1], p[2], p[3], p[4], p[5]) },
}

// Load reads a model from the line-oriented text format. Sections may
// appear in any order; if the first non-blank line is not a section
// keyword, it is treated as belonging to LOADCASES.
func Load(data []byte) (*Model, error) {
	m := New()
	current := "LOADCASES"

	// count the load cases first, so NODES/MEMBERS records read their
	// per-case fields even when LOADCASES comes later in the file.
	nc := 0
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if sectionKeywords[trimmed] {
			current = trimmed
		} else if trimmed != "" && current == "LOADCASES" {
			nc++
		}
	}
	current = "LOADCASES"

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if sectionKeywords[trimmed] {
			current = trimmed
			first = false
			continue
		}
		if first {
			first = false
		}
		tokens, err := tokenize(line)
		if err != nil {
			return nil, err
		}
		if err := arrange(m, current, tokens, nc); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, chk.Err("cannot read model: %v", err)
	}
	return m, nil
}

// tokenize splits a record line into tokens, honoring the ¬name¬ sentinel
// that lets names contain whitespace.
func tokenize(line string) ([]string, error) {
	var tokens []string
	parts := strings.Split(line, "¬")
	if len(parts)%2 == 0 {
		return nil, chk.Err("unbalanced ¬ sentinel in line: %q", line)
	}
	for i, part := range parts {
		if i%2 == 1 {
			// inside sentinels: this whole part is one token (a name).
			tokens = append(tokens, part)
			continue
		}
		for _, f := range strings.Fields(part) {
			tokens = append(tokens, f)
		}
	}
	return tokens, nil
}

func arrange(m *Model, section string, t []string, nc int) error {
	switch section {
	case "LOADCASES":
		m.LoadCases = append(m.LoadCases, &LoadCase{Name: t[0]})

	case "COMBINATIONS":
		factors := make([]float64, len(t)-1)
		for i := 1; i < len(t); i++ {
			v, err := strconv.ParseFloat(t[i], 64)
			if err != nil {
				return chk.Err("combination %q: bad factor %q", t[0], t[i])
			}
			factors[i-1] = v
		}
		m.Combinations = append(m.Combinations, &Combination{Name: t[0], Factors: factors})

	case "MATERIALS":
		e, err1 := strconv.ParseFloat(t[1], 64)
		a, err2 := strconv.ParseFloat(t[2], 64)
		if err1 != nil || err2 != nil {
			return chk.Err("material %q: bad numeric field", t[0])
		}
		m.Materials = append(m.Materials, NewMaterial(t[0], e, a))

	case "SECTIONS":
		typeID, err := strconv.Atoi(t[1])
		if err != nil || typeID < 0 || typeID >= len(sectionCtors) {
			return chk.Err("section %q: bad typeId %q", t[0], t[1])
		}
		params := make([]float64, len(t)-2)
		for i := 2; i < len(t); i++ {
			v, err := strconv.ParseFloat(t[i], 64)
			if err != nil {
				return chk.Err("section %q: bad numeric field %q", t[0], t[i])
			}
			params[i-2] = v
		}
		m.Sections = append(m.Sections, sectionCtors[typeID](t[0], params))

	case "NODES":
		vals, err := floats(t, 0, 13)
		if err != nil {
			return err
		}
		n := NewNode(vals[0], vals[1], nc)
		n.Restr = [3]int{int(vals[2]), int(vals[3]), int(vals[4])}
		n.SupportAngle = vals[5]
		n.Springs = [3]float64{vals[6], vals[7], vals[8]}
		n.PDispl = [3]float64{vals[9], vals[10], vals[11]}
		n.Hinge = int(vals[12])
		for i := 0; i < nc; i++ {
			base := 13 + 4*i
			cvals, err := floats(t, base, 4)
			if err != nil {
				return err
			}
			n.Px[i], n.Py[i], n.Mz[i], n.Pangle[i] = cvals[0], cvals[1], cvals[2], cvals[3]
		}
		m.Nodes = append(m.Nodes, n)

	case "MEMBERS":
		i, err1 := strconv.Atoi(t[0])
		j, err2 := strconv.Atoi(t[1])
		if err1 != nil || err2 != nil {
			return chk.Err("member: bad node indices %q %q", t[0], t[1])
		}
		rest, err := floats(t, 4, 4)
		if err != nil {
			return err
		}
		mb := NewMember(i, j, t[2], t[3], nc)
		mb.Tensile, mb.Curvature = rest[0], rest[1]
		mb.ReleaseStart, mb.ReleaseEnd = int(rest[2]), int(rest[3])
		for c := 0; c < nc; c++ {
			base := 8 + 5*c
			cvals, err := floats(t, base, 5)
			if err != nil {
				return err
			}
			mb.Qx[c], mb.Qy[c], mb.QType[c], mb.Tsup[c], mb.Tinf[c] = cvals[0], cvals[1], cvals[2], cvals[3], cvals[4]
		}
		m.Members = append(m.Members, mb)

	default:
		return chk.Err("unknown section %q", section)
	}
	return nil
}

func floats(t []string, start, n int) ([]float64, error) {
	if start+n > len(t) {
		return nil, chk.Err("record has %d fields, need at least %d starting at %d", len(t), n, start)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(t[start+i], 64)
		if err != nil {
			return nil, chk.Err("bad numeric field %q", t[start+i])
		}
		out[i] = v
	}
	return out, nil
}

// Save writes the model to the line-oriented text format, in the
// canonical section order: LOADCASES, COMBINATIONS, MATERIALS, SECTIONS,
// NODES, MEMBERS.
func Save(m *Model) []byte {
	var b bytes.Buffer

	b.WriteString("LOADCASES\n")
	for _, c := range m.LoadCases {
		fmt.Fprintf(&b, "¬%s¬\n", c.Name)
	}

	b.WriteString("COMBINATIONS\n")
	for _, c := range m.Combinations {
		fmt.Fprintf(&b, "¬%s¬ ", c.Name)
		for _, f := range c.Factors {
			fmt.Fprintf(&b, "%v ", f)
		}
		b.WriteString("\n")
	}

	b.WriteString("MATERIALS\n")
	for _, mat := range m.Materials {
		fmt.Fprintf(&b, "¬%s¬ %v %v\n", mat.Name, mat.E, mat.Alpha)
	}

	b.WriteString("SECTIONS\n")
	for _, s := range m.Sections {
		fmt.Fprintf(&b, "¬%s¬ %d", s.Name, int(s.Type))
		for _, p := range s.Parameters {
			fmt.Fprintf(&b, " %v", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("NODES\n")
	for _, n := range m.Nodes {
		fmt.Fprintf(&b, "%v %v %d %d %d %v %v %v %v %v %v %v %d",
			n.X, n.Y, n.Restr[0], n.Restr[1], n.Restr[2], n.SupportAngle,
			n.Springs[0], n.Springs[1], n.Springs[2],
			n.PDispl[0], n.PDispl[1], n.PDispl[2], n.Hinge)
		for i := range m.LoadCases {
			fmt.Fprintf(&b, " %v %v %v %v", n.Px[i], n.Py[i], n.Mz[i], n.Pangle[i])
		}
		b.WriteString("\n")
	}

	b.WriteString("MEMBERS\n")
	for _, mb := range m.Members {
		fmt.Fprintf(&b, "%d %d ¬%s¬ ¬%s¬ %v %v %d %d",
			mb.NodeI, mb.NodeJ, mb.Material, mb.Section, mb.Tensile, mb.Curvature,
			mb.ReleaseStart, mb.ReleaseEnd)
		for i := range m.LoadCases {
			fmt.Fprintf(&b, " %v %v %v %v %v", mb.Qx[i], mb.Qy[i], mb.QType[i], mb.Tsup[i], mb.Tinf[i])
		}
		b.WriteString("\n")
	}

	return b.Bytes()
}

// LoadFile reads and parses a model file at path.
func LoadFile(path string) (*Model, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q: %v", path, err)
	}
	return Load(data)
}

// SaveFile writes the model to a file at path, creating its directory if
// necessary.
func SaveFile(m *Model, path string) error {
	dir, fn := filepath.Split(path)
	io.WriteFileSD(dir, fn, string(Save(m)))
	return nil
}
