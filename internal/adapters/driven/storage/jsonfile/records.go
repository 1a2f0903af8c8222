package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// English field names.

type userEN struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"nationalId"`
}

type serviceEN struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Price     json.Number `json:"price"`
	Category  int         `json:"category"`
	Status    int         `json:"status"`
}

// Legacy Portuguese field names.

type userPT struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type servicePT struct {
	ID          int64       `json:"id"`
	UsuarioID   int64       `json:"usuarioId"`
	DataInicio  string      `json:"dataInicio"`
	DataFim     string      `json:"dataFim"`
	Preco       json.Number `json:"preco"`
	TipoServico int         `json:"tipoServico"`
	Status      int         `json:"status"`
}

func parsePrice(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", n, err)
	}
	return d, nil
}

func formatPrice(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func encodeUsers(naming Naming, users []domain.User) any {
	if naming == NamingPortuguese {
		out := make([]userPT, len(users))
		for i, u := range users {
			out[i] = userPT{ID: u.ID, Nome: u.Name, Email: u.Email, CPF: u.NationalID}
		}
		return out
	}
	out := make([]userEN, len(users))
	for i, u := range users {
		out[i] = userEN{ID: u.ID, Name: u.Name, Email: u.Email, NationalID: u.NationalID}
	}
	return out
}

func decodeUsers(naming Naming, data []byte) ([]domain.User, error) {
	if naming == NamingPortuguese {
		var in []userPT
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, err
		}
		out := make([]domain.User, len(in))
		for i, u := range in {
			out[i] = domain.User{ID: u.ID, Name: u.Nome, Email: u.Email, NationalID: u.CPF}
		}
		return out, nil
	}

	var in []userEN
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make([]domain.User, len(in))
	for i, u := range in {
		out[i] = domain.User(u)
	}
	return out, nil
}

func encodeServices(naming Naming, records []domain.ServiceRecord) any {
	if naming == NamingPortuguese {
		out := make([]servicePT, len(records))
		for i, r := range records {
			out[i] = servicePT{
				ID:          r.ID,
				UsuarioID:   r.UserID,
				DataInicio:  r.StartDate,
				DataFim:     r.EndDate,
				Preco:       formatPrice(r.Price),
				TipoServico: int(r.Category),
				Status:      int(r.Status),
			}
		}
		return out
	}
	out := make([]serviceEN, len(records))
	for i, r := range records {
		out[i] = serviceEN{
			ID:        r.ID,
			UserID:    r.UserID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Price:     formatPrice(r.Price),
			Category:  int(r.Category),
			Status:    int(r.Status),
		}
	}
	return out
}

func decodeServices(naming Naming, data []byte) ([]domain.ServiceRecord, error) {
	if naming == NamingPortuguese {
		var in []servicePT
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, err
		}
		out := make([]domain.ServiceRecord, len(in))
		for i, r := range in {
			price, err := parsePrice(r.Preco)
			if err != nil {
				return nil, fmt.Errorf("service %d: %w", r.ID, err)
			}
			out[i] = domain.ServiceRecord{
				ID:        r.ID,
				UserID:    r.UsuarioID,
				StartDate: r.DataInicio,
				EndDate:   r.DataFim,
				Price:     price,
				Category:  domain.Category(r.TipoServico),
				Status:    domain.Status(r.Status),
			}
		}
		return out, nil
	}

	var in []serviceEN
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make([]domain.ServiceRecord, len(in))
	for i, r := range in {
		price, err := parsePrice(r.Price)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", r.ID, err)
		}
		out[i] = domain.ServiceRecord{
			ID:        r.ID,
			UserID:    r.UserID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Price:     price,
			Category:  domain.Category(r.Category),
			Status:    domain.Status(r.Status),
		}
	}
	return out, nil
}
