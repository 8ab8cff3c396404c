package helper

import (
	"errors"
	"testing"
	"time"

	"lottery_manager/constants"
	"lottery_manager/model"
	"lottery_manager/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketColumns = []string{"id", "user_phone", "selected_numbers", "status", "receipt_image", "purchase_date", "confirmation_date"}

func TestSubmitTicketCreatesPendingTickets(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WithArgs("0900000001", "[7,15,23,42]", constants.TICKET_PENDING, "/uploads/a.png", sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	first, err := SubmitTicket(db, "0900000001", "[7,15,23,42]", utils.StringPtr("/uploads/a.png"), false)
	require.NoError(t, err)
	second, err := SubmitTicket(db, "0900000002", "[1,2,3,4]", nil, false)
	require.NoError(t, err)

	assert.Equal(t, constants.TICKET_PENDING, first.Status)
	assert.Equal(t, constants.TICKET_PENDING, second.Status)
	assert.Equal(t, []int{7, 15, 23, 42}, first.Numbers)
	assert.Equal(t, "/uploads/a.png", *first.Receipt)
	assert.Nil(t, second.Receipt)
	assert.Greater(t, second.ID, first.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTicketValidation(t *testing.T) {
	db, mock := newMockDB(t)

	cases := []struct {
		name    string
		phone   string
		numbers string
		strict  bool
		message string
	}{
		{"missing phone", "", "[1,2,3,4]", false, constants.PHONE_AND_NUMBERS_REQ},
		{"missing numbers", "0900000001", "", false, constants.PHONE_AND_NUMBERS_REQ},
		{"not an array", "0900000001", "1,2,3,4", false, constants.NUMBERS_NOT_INT_ARRAY},
		{"strict count", "0900000001", "[1,2,3]", true, constants.INVALID_TICKET_NUMBERS},
		{"strict range", "0900000001", "[1,2,3,51]", true, constants.INVALID_TICKET_NUMBERS},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SubmitTicket(db, tc.phone, tc.numbers, nil, tc.strict)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.message, vErr.Message)
		})
	}

	// no row may be written for rejected input
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTicketKeepsUncheckedNumbersWhenNotStrict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WithArgs("0900000001", "[1,2,99]", constants.TICKET_PENDING, nil, sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	ticket, err := SubmitTicket(db, "0900000001", "[1,2,99]", nil, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 99}, ticket.Numbers)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTicketStorageError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "tickets"`).WillReturnError(errors.New("connection refused"))

	_, err := SubmitTicket(db, "0900000001", "[1,2,3,4]", nil, false)
	var sErr *StorageError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "connection refused", sErr.Error())
}

func TestListTicketsDecodesNumbers(t *testing.T) {
	db, mock := newMockDB(t)
	confirmedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(ticketColumns).
		AddRow(2, "0900000002", "[7,15,23,42]", "confirmed", "/uploads/b.png", confirmedAt, confirmedAt).
		AddRow(1, "0900000001", "not-json", "confirmed", nil, confirmedAt.Add(-time.Hour), confirmedAt)

	mock.ExpectQuery(`SELECT \* FROM "tickets" WHERE status = \$1 ORDER BY purchase_date DESC, id DESC`).
		WithArgs("confirmed").
		WillReturnRows(rows)

	records, err := ListTickets(db, model.FilterTicketInput{Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, "0900000002", records[0].UserPhone)
	assert.Equal(t, []int{7, 15, 23, 42}, records[0].Numbers)
	assert.Equal(t, "/uploads/b.png", *records[0].ReceiptImage)
	require.NotNil(t, records[0].ConfirmationDate)
	assert.True(t, confirmedAt.Equal(*records[0].ConfirmationDate))

	assert.Equal(t, []int{}, records[1].Numbers)
	assert.Nil(t, records[1].ReceiptImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTicketsWithoutFilterReturnsEmptySlice(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "tickets" ORDER BY purchase_date DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(ticketColumns))

	records, err := ListTickets(db, model.FilterTicketInput{})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTicketsByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tickets" WHERE user_phone = \$1 ORDER BY purchase_date DESC, id DESC`).
		WithArgs("0900000009").
		WillReturnRows(sqlmock.NewRows(ticketColumns).
			AddRow(5, "0900000009", "[3,4,5,6]", "pending", nil, now, nil))

	records, err := ListTicketsByPhone(db, "0900000009")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []int{3, 4, 5, 6}, records[0].Numbers)
	assert.Nil(t, records[0].ConfirmationDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTicketNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "tickets" WHERE "tickets"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(ticketColumns))

	_, err := GetTicket(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmAndRejectTicket(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "tickets" SET`).
		WithArgs(sqlmock.AnyArg(), constants.TICKET_CONFIRMED, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "tickets" SET`).
		WithArgs(nil, constants.TICKET_REJECTED, 6).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// id that does not exist still succeeds, just with no match
	mock.ExpectExec(`UPDATE "tickets" SET`).
		WithArgs(sqlmock.AnyArg(), constants.TICKET_CONFIRMED, 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := ConfirmTicket(db, 5, false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = RejectTicket(db, 6, false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = ConfirmTicket(db, 999, false)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmTicketStrictOnlyMovesPending(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "tickets" SET .+ WHERE id = \$3 AND status = \$4`).
		WithArgs(sqlmock.AnyArg(), constants.TICKET_CONFIRMED, 5, constants.TICKET_PENDING).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := ConfirmTicket(db, 5, true)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTicketsByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT status, count\(\*\) as total FROM "tickets" GROUP BY "status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("pending", 3).
			AddRow("confirmed", 2).
			AddRow("rejected", 1))

	stats, err := CountTicketsByStatus(db)
	require.NoError(t, err)
	assert.Equal(t, model.TicketStats{Pending: 3, Confirmed: 2, Rejected: 1, Total: 6}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToTicketRecord(t *testing.T) {
	now := time.Now()
	record := ToTicketRecord(model.Ticket{
		ID:               9,
		UserPhone:        "0900000000",
		SelectedNumbers:  "[7,15,23,42]",
		Status:           constants.TICKET_CONFIRMED,
		ReceiptImage:     utils.StringPtr("/uploads/x.png"),
		PurchaseDate:     now,
		ConfirmationDate: &now,
	})

	assert.Equal(t, uint(9), record.ID)
	assert.Equal(t, "0900000000", record.UserPhone)
	assert.Equal(t, []int{7, 15, 23, 42}, record.Numbers)
	assert.Equal(t, constants.TICKET_CONFIRMED, record.Status)
	assert.Equal(t, "/uploads/x.png", *record.ReceiptImage)
	assert.True(t, now.Equal(record.PurchaseDate))
	require.NotNil(t, record.ConfirmationDate)
}
