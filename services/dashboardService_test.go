package services_test

import (
	"context"
	"testing"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/services"
	"retail-api/testutil"
)

func TestDashboardSummary(t *testing.T) {
	db := testutil.NewDB(t)
	store := testutil.CreateStore(t, db, "Main")
	ctx := context.Background()

	sales := services.NewSaleService(db)
	for _, amount := range []float64{100, 50} {
		if _, err := sales.Create(ctx, dtos.SaleInput{Customer: "C", StoreID: dtos.FlexibleID(store.ID), Amount: floatPtr(amount), Advance: 10}); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Create(&models.Product{Name: "Low", Code: "LOW", Stock: 2, StoreID: store.ID}).Error; err != nil {
		t.Fatal(err)
	}
	testutil.CreateEmployee(t, db, store.ID, "a@x.com")
	if _, err := services.NewExpenseService(db).Create(ctx, dtos.ExpenseInput{Name: "Tea", Amount: 30}, nil); err != nil {
		t.Fatal(err)
	}

	summary, err := services.NewDashboardService(db).Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := dtos.DashboardSummary{
		SalesCount: 2, SalesTotal: 150, OutstandingBalance: 130, TodaySales: 150,
		LowStock: 1, ActiveEmployees: 1, MonthExpenses: 30,
	}
	if *summary != want {
		t.Fatalf("summary = %+v, want %+v", *summary, want)
	}
}
