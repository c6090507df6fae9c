package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

type stateRow struct {
	bun.BaseModel `bun:"table:states"`

	ID        int64  `bun:"id,pk,autoincrement"`
	StateCode string `bun:"state_code"`
	StateName string `bun:"state_name"`
}

var seedStates = []stateRow{
	{StateCode: "AP", StateName: "Andhra Pradesh"},
	{StateCode: "AR", StateName: "Arunachal Pradesh"},
	{StateCode: "AS", StateName: "Assam"},
	{StateCode: "BR", StateName: "Bihar"},
	{StateCode: "CG", StateName: "Chhattisgarh"},
	{StateCode: "GA", StateName: "Goa"},
	{StateCode: "GJ", StateName: "Gujarat"},
	{StateCode: "HR", StateName: "Haryana"},
	{StateCode: "HP", StateName: "Himachal Pradesh"},
	{StateCode: "JH", StateName: "Jharkhand"},
	{StateCode: "KA", StateName: "Karnataka"},
	{StateCode: "KL", StateName: "Kerala"},
	{StateCode: "MP", StateName: "Madhya Pradesh"},
	{StateCode: "MH", StateName: "Maharashtra"},
	{StateCode: "MN", StateName: "Manipur"},
	{StateCode: "ML", StateName: "Meghalaya"},
	{StateCode: "MZ", StateName: "Mizoram"},
	{StateCode: "NL", StateName: "Nagaland"},
	{StateCode: "OD", StateName: "Odisha"},
	{StateCode: "PB", StateName: "Punjab"},
	{StateCode: "RJ", StateName: "Rajasthan"},
	{StateCode: "SK", StateName: "Sikkim"},
	{StateCode: "TN", StateName: "Tamil Nadu"},
	{StateCode: "TS", StateName: "Telangana"},
	{StateCode: "TR", StateName: "Tripura"},
	{StateCode: "UP", StateName: "Uttar Pradesh"},
	{StateCode: "UK", StateName: "Uttarakhand"},
	{StateCode: "WB", StateName: "West Bengal"},
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		rows := make([]stateRow, len(seedStates))
		copy(rows, seedStates)
		_, err := db.NewInsert().Model(&rows).Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		codes := make([]string, 0, len(seedStates))
		for _, s := range seedStates {
			codes = append(codes, s.StateCode)
		}
		_, err := db.NewDelete().
			TableExpr("states").
			Where("state_code IN (?)", bun.In(codes)).
			Exec(ctx)
		return err
	})
}
