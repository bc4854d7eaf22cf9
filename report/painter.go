// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import "strings"

// painter is a growable 2D character sheet addressed by a moving brush
// position, used to lay out the connection lines and label text around a
// marked source line before it is flattened to a string. Rows grow
// downward, columns grow rightward; cells default to defaultPaint until
// painted over.
type painter struct {
	sheet        [][]string
	brushRow     int
	brushCol     int
	defaultPaint string
}

func newPainter(defaultPaint string) *painter {
	return &painter{defaultPaint: defaultPaint}
}

func (p *painter) checkOrInsert(row, col int) {
	for len(p.sheet) <= row {
		p.sheet = append(p.sheet, nil)
	}
	for len(p.sheet[row]) <= col {
		p.sheet[row] = append(p.sheet[row], p.defaultPaint)
	}
}

func (p *painter) moveTo(row, col int) {
	p.brushRow, p.brushCol = row, col
	p.checkOrInsert(row, col)
}

func (p *painter) moveToZero() { p.moveTo(0, 0) }

func (p *painter) moveRightBy(n int) { p.moveTo(p.brushRow, p.brushCol+n) }
func (p *painter) moveLeftBy(n int) {
	col := p.brushCol - n
	if col < 0 {
		col = 0
	}
	p.moveTo(p.brushRow, col)
}
func (p *painter) moveDownBy(n int) { p.moveTo(p.brushRow+n, p.brushCol) }
func (p *painter) moveUpBy(n int) {
	row := p.brushRow - n
	if row < 0 {
		row = 0
	}
	p.moveTo(row, p.brushCol)
}

func (p *painter) moveRight() { p.moveRightBy(1) }
func (p *painter) moveLeft()  { p.moveLeftBy(1) }
func (p *painter) moveDown()  { p.moveDownBy(1) }
func (p *painter) moveUp()    { p.moveUpBy(1) }

// paint writes s at the current brush position without moving the brush.
func (p *painter) paint(s string) {
	p.checkOrInsert(p.brushRow, p.brushCol)
	p.sheet[p.brushRow][p.brushCol] = s
}

func (p *painter) currentBrushPos() (int, int) { return p.brushRow, p.brushCol }

func (p *painter) currentRowSize() int {
	if p.brushRow >= len(p.sheet) {
		return 0
	}
	return len(p.sheet[p.brushRow])
}

// String renders the sheet left-to-right, rows joined by newlines in row
// order; see reversedRows for the right-to-left column order.
func (p *painter) String() string {
	var b strings.Builder
	for i, row := range p.sheet {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell)
		}
	}
	return b.String()
}

// reversedRows returns the sheet's rows with each row's cells reversed,
// the step §4.8 requires before printing RTL source: the painter lays
// cells out left-to-right internally, and printing reverses that back into
// right-to-left reading order.
func (p *painter) reversedRows() [][]string {
	out := make([][]string, len(p.sheet))
	for i, row := range p.sheet {
		rev := make([]string, len(row))
		for j, cell := range row {
			rev[len(row)-1-j] = cell
		}
		out[i] = rev
	}
	return out
}
