package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// SalaryRecord is one month's pay for one staff member. Staff may arrive
// populated or as a bare id, same as organization references.
type SalaryRecord struct {
	ID         string          `json:"_id"`
	Staff      StaffRef        `json:"staff"`
	Amount     decimal.Decimal `json:"amount"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deductions decimal.Decimal `json:"deductions"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Status     string          `json:"status,omitempty"` // pending | paid
}

// Net is the payable amount after bonus and deductions.
func (r SalaryRecord) Net() decimal.Decimal {
	return r.Amount.Add(r.Bonus).Sub(r.Deductions)
}

// StaffRef is a staff reference that tolerates the populated-or-id duality.
type StaffRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (s *StaffRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = StaffRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("staff reference: %w", err)
		}
		*s = StaffRef{ID: id}
		return nil
	}
	type plain StaffRef
	var ref plain
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("staff reference: %w", err)
	}
	*s = StaffRef(ref)
	return nil
}

type CreateSalaryInput struct {
	StaffID    string          `json:"staff" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deductions decimal.Decimal `json:"deductions"`
	Month      int             `json:"month" validate:"required,min=1,max=12"`
	Year       int             `json:"year" validate:"required"`
	Status     string          `json:"status,omitempty"`
}

type UpdateSalaryInput struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Deductions *decimal.Decimal `json:"deductions,omitempty"`
	Status     string           `json:"status,omitempty"`
}

// ListSalariesOptions filters salary records by pay period.
type ListSalariesOptions struct {
	Month int
	Year  int
}

func (o ListSalariesOptions) values() url.Values {
	q := url.Values{}
	if o.Month > 0 {
		q.Set("month", strconv.Itoa(o.Month))
	}
	if o.Year > 0 {
		q.Set("year", strconv.Itoa(o.Year))
	}
	return q
}

func (c *Client) ListSalaries(ctx context.Context, opts ListSalariesOptions) ([]SalaryRecord, error) {
	return get[[]SalaryRecord](ctx, c, "/api/salary", opts.values(), []Tag{TypeTag(TagSalary)})
}

func (c *Client) GetSalary(ctx context.Context, id string) (*SalaryRecord, error) {
	return get[*SalaryRecord](ctx, c, "/api/salary/"+id, nil, []Tag{IDTag(TagSalary, id)})
}

func (c *Client) CreateSalary(ctx context.Context, in CreateSalaryInput) (*SalaryRecord, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid salary record: %w", err)
	}
	var out SalaryRecord
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagSalary)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/salary", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSalary(ctx context.Context, id string, in UpdateSalaryInput) (*SalaryRecord, error) {
	var out SalaryRecord
	err := c.cache.Mutate(ctx, []Tag{IDTag(TagSalary, id)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/salary/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSalary(ctx context.Context, id string) error {
	return c.cache.Mutate(ctx, []Tag{TypeTag(TagSalary)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, "/api/salary/"+id, nil, nil, nil, true)
	})
}
