package tagger

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tg := New([]string{"수출", "창업", "R&D", "AI"})

	got := tg.Extract("2024년 창업기업 수출지원 사업", "AI 기반 R&D 과제 모집")
	want := []string{"수출", "창업", "R&D", "AI"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v (keyword-list order)", got, want)
	}
}

func TestExtractCaseSensitive(t *testing.T) {
	tg := New([]string{"AI"})
	if got := tg.Extract("ai 바우처 지원", ""); got != nil {
		t.Fatalf("Extract = %v, want nil for lowercase input", got)
	}
	if got := tg.Extract("AI 바우처 지원", ""); len(got) != 1 {
		t.Fatalf("Extract = %v, want [AI]", got)
	}
}

func TestExtractSummaryOnly(t *testing.T) {
	tg := New([]string{"소상공인"})
	got := tg.Extract("", "소상공인 경영안정 자금")
	if len(got) != 1 || got[0] != "소상공인" {
		t.Fatalf("Extract = %v, want [소상공인]", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	tg := New(nil)
	if got := tg.Extract("수출 지원", "요약"); got != nil {
		t.Fatalf("Extract with no keywords = %v, want nil", got)
	}
	tg = New([]string{"수출"})
	if got := tg.Extract("", ""); got != nil {
		t.Fatalf("Extract with no text = %v, want nil", got)
	}
}

func TestExtractNoDuplicates(t *testing.T) {
	tg := New([]string{"창업"})
	got := tg.Extract("창업 지원", "예비 창업 패키지")
	if len(got) != 1 {
		t.Fatalf("Extract = %v, want single hit per keyword", got)
	}
}
