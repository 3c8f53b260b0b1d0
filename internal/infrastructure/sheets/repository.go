package sheets

import (
	"context"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// Sheet columns as they appear in the source spreadsheet.
const (
	colChatID = "Chat ID"
	colName   = "Имя клиента"
	colPhone  = "Телефон"
	colCar    = "Номер Авто"
	colQr     = "Заказ - QR"
	colPrice  = "Цена за месяц"
	colTires  = "Кол-во шин"
	colRims   = "Наличие дисков"
	colStart  = "Начало"
	colTerm   = "Срок"
	colRemind = "Напомнить"
	colEnd    = "Окончание"
	colStore  = "Склад хранения"
	colCell   = "Ячейка"
	colTotal  = "Общая сумма"
	colDebt   = "Долг"
	colDeal   = "Договор"
	colAddr   = "Адрес клиента"
	colStatus = "Статус сделки"
	colSource = "Источник трафика"
	colDot    = "DOT CODE"

	colTemplateTitle = "Название"
	colTemplateText  = "Текст"
)

// Repository adapts the Apps Script client to ports.ClientRepository.
type Repository struct {
	client        *Client
	clientSheet   string
	archiveSheet  string
	templateSheet string
}

func NewRepository(client *Client, clientSheet, archiveSheet, templateSheet string) *Repository {
	return &Repository{
		client:        client,
		clientSheet:   clientSheet,
		archiveSheet:  archiveSheet,
		templateSheet: templateSheet,
	}
}

func rowToClient(row map[string]string) domain.Client {
	return domain.Client{
		ChatID:          row[colChatID],
		Name:            row[colName],
		Phone:           row[colPhone],
		CarNumber:       row[colCar],
		OrderQr:         row[colQr],
		PricePerMonth:   row[colPrice],
		TireCount:       row[colTires],
		HasRims:         row[colRims],
		StartDate:       row[colStart],
		Duration:        row[colTerm],
		Reminder:        row[colRemind],
		EndDate:         row[colEnd],
		StorageLocation: row[colStore],
		Cell:            row[colCell],
		TotalAmount:     row[colTotal],
		Debt:            row[colDebt],
		Contract:        row[colDeal],
		ClientAddress:   row[colAddr],
		DealStatus:      row[colStatus],
		TrafficSource:   row[colSource],
		DotCode:         row[colDot],
	}
}

func (r *Repository) FindByChatID(ctx context.Context, chatID string) (*domain.Client, error) {
	rows, err := r.client.fetchRows(ctx, r.clientSheet)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[colChatID] == chatID {
			c := rowToClient(row)
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *Repository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.client.fetchRows(ctx, r.clientSheet)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToClient(row))
	}
	return out, nil
}

func (r *Repository) HistoryByChatID(ctx context.Context, chatID string) ([]domain.ArchiveOrder, error) {
	rows, err := r.client.fetchRows(ctx, r.archiveSheet)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArchiveOrder, 0)
	for _, row := range rows {
		if row[colChatID] == chatID {
			out = append(out, domain.ArchiveOrder(rowToClient(row)))
		}
	}
	return out, nil
}

func (r *Repository) ListHistory(ctx context.Context) ([]domain.ArchiveOrder, error) {
	rows, err := r.client.fetchRows(ctx, r.archiveSheet)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArchiveOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ArchiveOrder(rowToClient(row)))
	}
	return out, nil
}

func (r *Repository) ListTemplates(ctx context.Context) ([]domain.MessageTemplate, error) {
	rows, err := r.client.fetchRows(ctx, r.templateSheet)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MessageTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MessageTemplate{
			Title: row[colTemplateTitle],
			Text:  row[colTemplateText],
		})
	}
	return out, nil
}

func (r *Repository) AddClient(ctx context.Context, chatID, phone string) error {
	return r.client.addUser(ctx, chatID, phone)
}
