package services_test

import (
	"context"
	"testing"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/services"
	"retail-api/testutil"
	"retail-api/utils/apperror"
)

func TestPayrollNetSalary(t *testing.T) {
	db := testutil.NewDB(t)
	store := testutil.CreateStore(t, db, "Main")
	emp := testutil.CreateEmployee(t, db, store.ID, "e@x.com")
	svc := services.NewPayrollService(db)
	ctx := context.Background()

	computed, err := svc.Create(ctx, dtos.PayrollInput{
		EmployeeID: dtos.FlexibleID(emp.ID), Month: 3, Year: 2024,
		BasicSalary: 20000, Allowances: 1500, Deductions: 500,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if computed.NetSalary != 21000 || computed.Status != models.PayrollPending {
		t.Fatalf("payroll = %+v", computed)
	}
	if computed.EmployeeName == nil || *computed.EmployeeName != emp.Name || computed.StoreName == nil || *computed.StoreName != "Main" {
		t.Fatalf("joined fields = %v / %v", computed.EmployeeName, computed.StoreName)
	}

	sent := 19999.0
	stored, err := svc.Create(ctx, dtos.PayrollInput{
		EmployeeID: dtos.FlexibleID(emp.ID), Month: 4, Year: 2024,
		BasicSalary: 20000, Allowances: 1500, Deductions: 500, NetSalary: &sent,
	})
	if err != nil {
		t.Fatalf("Create with net salary: %v", err)
	}
	if stored.NetSalary != sent {
		t.Fatalf("net salary = %v, want the caller's %v", stored.NetSalary, sent)
	}
}

func TestPayrollDuplicatePeriod(t *testing.T) {
	db := testutil.NewDB(t)
	store := testutil.CreateStore(t, db, "Main")
	emp := testutil.CreateEmployee(t, db, store.ID, "e@x.com")
	other := testutil.CreateEmployee(t, db, store.ID, "o@x.com")
	svc := services.NewPayrollService(db)
	ctx := context.Background()

	in := dtos.PayrollInput{EmployeeID: dtos.FlexibleID(emp.ID), Month: 6, Year: 2024, BasicSalary: 100}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Create(ctx, in)
	if !apperror.Is(err, apperror.KindConflict) || err.(*apperror.Error).Message != "Payroll already exists for this employee and period" {
		t.Fatalf("duplicate period = %v", err)
	}

	in.EmployeeID = dtos.FlexibleID(other.ID)
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("same period for another employee: %v", err)
	}

	byEmployee, err := svc.ListByEmployee(ctx, emp.ID)
	if err != nil || len(byEmployee) != 1 {
		t.Fatalf("ListByEmployee = %v, %v", byEmployee, err)
	}
}

func TestPayrollUpdateAndSummary(t *testing.T) {
	db := testutil.NewDB(t)
	store := testutil.CreateStore(t, db, "Main")
	emp := testutil.CreateEmployee(t, db, store.ID, "e@x.com")
	svc := services.NewPayrollService(db)
	ctx := context.Background()

	jan, err := svc.Create(ctx, dtos.PayrollInput{EmployeeID: dtos.FlexibleID(emp.ID), Month: 1, Year: 2024, BasicSalary: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, dtos.PayrollInput{EmployeeID: dtos.FlexibleID(emp.ID), Month: 2, Year: 2024, BasicSalary: 500}); err != nil {
		t.Fatal(err)
	}

	paid := models.PayrollPaid
	date := "2024-02-01"
	updated, err := svc.Update(ctx, jan.ID, dtos.PayrollUpdateInput{Status: &paid, PaymentDate: &date})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != paid || updated.PaymentDate == nil || *updated.PaymentDate != date || updated.NetSalary != 1000 {
		t.Fatalf("updated = %+v", updated)
	}

	month := 2
	if _, err := svc.Update(ctx, jan.ID, dtos.PayrollUpdateInput{Month: &month}); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("moving onto an existing period = %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalRecords != 2 || summary.TotalPaid != 1000 || summary.TotalPending != 500 {
		t.Fatalf("summary = %+v", summary)
	}
}
