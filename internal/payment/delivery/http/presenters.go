package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/payment"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

type listReq struct {
	paginator.PageQuery
	Search string `form:"search" binding:"max=100"`
	Status string `form:"status" binding:"omitempty,oneofci=all paid pending overdue failed"`
	Sort   string `form:"sort" binding:"omitempty,oneofci=newest oldest amount_asc amount_desc"`
}

func (r listReq) toInput() payment.ListInput {
	return payment.ListInput{
		Query:  r.PageQuery,
		Search: strings.TrimSpace(r.Search),
		Status: activeFilter(r.Status),
		Sort:   strings.ToLower(r.Sort),
	}
}

type dueReq struct {
	paginator.PageQuery
	Search   string `form:"search" binding:"max=100"`
	Location string `form:"location" binding:"omitempty,uuidorall"`
}

func (r dueReq) toInput() payment.DueInput {
	return payment.DueInput{
		Query:      r.PageQuery,
		Search:     strings.TrimSpace(r.Search),
		LocationID: activeFilter(r.Location),
	}
}

func activeFilter(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == querysync.All {
		return ""
	}
	return v
}

type refResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type personResp struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type paymentResp struct {
	ID        string      `json:"id"`
	Reference string      `json:"reference"`
	Amount    int64       `json:"amount"`
	Status    string      `json:"status"`
	DueDate   time.Time   `json:"dueDate"`
	PaidAt    *time.Time  `json:"paidAt"`
	Tenant    *personResp `json:"tenant"`
	Property  *refResp    `json:"property"`
	CreatedAt time.Time   `json:"createdAt"`
}

type dueRentResp struct {
	PaymentID   string      `json:"paymentId"`
	Reference   string      `json:"reference"`
	Amount      int64       `json:"amount"`
	DueDate     time.Time   `json:"dueDate"`
	DaysOverdue int         `json:"daysOverdue"`
	Tenant      *personResp `json:"tenant"`
	Property    *refResp    `json:"property"`
	Location    *refResp    `json:"location"`
}

func newRefResp(r *model.Ref) *refResp {
	if r == nil {
		return nil
	}
	return &refResp{ID: r.ID, Name: r.Name}
}

func newPersonResp(p *model.PersonRef) *personResp {
	if p == nil {
		return nil
	}
	return &personResp{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
}

func (h *handler) newListResp(page paginator.Page[model.Payment]) paginator.Page[paymentResp] {
	return paginator.Map(page, func(p model.Payment) paymentResp {
		return paymentResp{
			ID:        p.ID,
			Reference: p.Reference,
			Amount:    p.Amount,
			Status:    p.Status,
			DueDate:   p.DueDate,
			PaidAt:    p.PaidAt,
			Tenant:    newPersonResp(p.Tenant),
			Property:  newRefResp(p.Property),
			CreatedAt: p.CreatedAt,
		}
	})
}

func (h *handler) newDueResp(page paginator.Page[model.DueRent]) paginator.Page[dueRentResp] {
	return paginator.Map(page, func(d model.DueRent) dueRentResp {
		return dueRentResp{
			PaymentID:   d.PaymentID,
			Reference:   d.Reference,
			Amount:      d.Amount,
			DueDate:     d.DueDate,
			DaysOverdue: d.DaysOverdue,
			Tenant:      newPersonResp(d.Tenant),
			Property:    newRefResp(d.Property),
			Location:    newRefResp(d.Location),
		}
	})
}
