package datebr

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos na borda JSON. O formato brasileiro tem prioridade;
// o ISO é fallback para clientes que enviam datas no padrão yyyy-MM-dd.
const (
	LayoutBR  = "02/01/2006"
	LayoutISO = "2006-01-02"
)

// Date é uma data de calendário (sem hora) serializada como dd/MM/yyyy.
type Date struct {
	time.Time
}

// New cria uma Date a partir de ano, mês e dia.
func New(ano int, mes time.Month, dia int) Date {
	return Date{time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// Parse aceita apenas o formato dd/MM/yyyy (usado no CSV e em query params).
func Parse(s string) (Date, error) {
	t, err := time.Parse(LayoutBR, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// FromTime converte um *time.Time vindo do banco (coluna DATE) em *Date.
func FromTime(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
	return &d
}

// TimePtr devolve o *time.Time correspondente, para bind em queries.
func TimePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// String devolve a data no formato brasileiro.
func (d Date) String() string {
	return d.Format(LayoutBR)
}

// Equal compara apenas ano/mês/dia.
func (d Date) Equal(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month() && d.Day() == o.Day()
}

// MarshalJSON serializa como "dd/MM/yyyy".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(LayoutBR) + `"`), nil
}

// UnmarshalJSON tenta primeiro dd/MM/yyyy e depois yyyy-MM-dd, nesta ordem.
// Somente null é tolerado: string vazia não é data e falha o binding.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if t, err := time.Parse(LayoutBR, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return fmt.Errorf("data %q fora dos formatos dd/MM/yyyy e yyyy-MM-dd", s)
	}
	d.Time = t
	return nil
}
