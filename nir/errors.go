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

package nir

import (
	"fmt"

	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/report"
	"github.com/nazm-lang/nazmc/resolve"
	"github.com/nazm-lang/nazmc/span"
)

func (b *Builder) reportUnresolvedItem(id intern.ID, sp span.Span) {
	file := b.files[b.currentFileIdx]
	name := b.table.Value(id)
	msg := fmt.Sprintf("لم يتم العثور على الاسم `%s` في المسار", name)
	win := report.Mark(file.Path, file.Source, sp, "هذا الاسم غير موجود داخل المسار المحدد", report.SeverityError)
	b.diags = append(b.diags, report.NewDiagnostic(report.SeverityError, msg).WithWindow(win))
}

func (b *Builder) reportPkgPathErr(ids []intern.ID, spans []span.Span) {
	for len(ids) > 0 {
		lastID := ids[len(ids)-1]
		lastSpan := spans[len(spans)-1]
		ids = ids[:len(ids)-1]
		spans = spans[:len(spans)-1]
		if _, ok := b.packages.Lookup(ids); ok {
			b.reportUnresolvedItem(lastID, lastSpan)
			return
		}
	}
	b.reportUnresolvedItem(0, span.Span{})
}

func (b *Builder) reportEncapsulationErr(resolvedItem resolve.ItemInFile, id intern.ID, sp span.Span) {
	file := b.files[b.currentFileIdx]
	owner := b.files[resolvedItem.FileIdx]
	name := b.table.Value(id)
	msg := fmt.Sprintf("العنصر `%s` خاص بحزمته ولا يمكن استخدامه من حزمة أخرى", name)
	win := report.Mark(file.Path, file.Source, sp, "تم استخدام هذا العنصر من خارج حزمته", report.SeverityError)
	declSpan := owner.AST.Items[resolvedItem.ItemIdx].Name.Span
	declWin := report.Mark(owner.Path, owner.Source, declSpan, "تم تعريف العنصر هنا بصلاحية افتراضية", report.SeveritySecondary)
	b.diags = append(b.diags, report.NewDiagnostic(report.SeverityError, msg).WithWindow(win).WithWindow(declWin))
}

func (b *Builder) reportStructExpected(sp span.Span) {
	file := b.files[b.currentFileIdx]
	msg := "كان من المتوقع اسم هيكل في هذا الموضع"
	win := report.Mark(file.Path, file.Source, sp, "هذا الاسم يشير إلى دالة وليس هيكلاً", report.SeverityError)
	b.diags = append(b.diags, report.NewDiagnostic(report.SeverityError, msg).WithWindow(win))
}
