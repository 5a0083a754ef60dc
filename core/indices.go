package core

import (
	"math"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// eGDR regression coefficients (mg/kg/min), taken as given domain constants.
const (
	egdrIntercept  = 21.158
	egdrWaistCoeff = 0.09
	egdrHTNCoeff   = 3.407
	egdrHbA1cCoeff = 0.551
)

// ComputeNLR returns neutrophils / lymphocytes, absent when lymphocytes <= 0.
func ComputeNLR(in schema.LabInputs) schema.IndexValue {
	if in.Lymphocytes <= 0 {
		return schema.NoIndex()
	}
	return schema.SomeIndex(in.Neutrophils / in.Lymphocytes)
}

// ComputePLR returns platelets / lymphocytes, absent when lymphocytes <= 0.
func ComputePLR(in schema.LabInputs) schema.IndexValue {
	if in.Lymphocytes <= 0 {
		return schema.NoIndex()
	}
	return schema.SomeIndex(in.Platelets / in.Lymphocytes)
}

// ComputeTyG returns ln(triglycerides * glucose / 2), absent when either
// input <= 0 (the log argument must be positive).
func ComputeTyG(in schema.LabInputs) schema.IndexValue {
	if in.Triglycerides <= 0 || in.Glucose <= 0 {
		return schema.NoIndex()
	}
	return schema.SomeIndex(math.Log(in.Triglycerides * in.Glucose / 2))
}

// ComputeMETSIR returns ln(2*glucose + triglycerides) * BMI / ln(HDL).
// Absent when glucose, triglycerides, HDL or BMI <= 0, which guards the log
// arguments and the ln(HDL) denominator against non-positive inputs.
func ComputeMETSIR(in schema.LabInputs) schema.IndexValue {
	if in.Glucose <= 0 || in.Triglycerides <= 0 || in.HDL <= 0 || in.BMI <= 0 {
		return schema.NoIndex()
	}
	return schema.SomeIndex(math.Log(2*in.Glucose+in.Triglycerides) * in.BMI / math.Log(in.HDL))
}

// ComputeEGDR returns the estimated glucose disposal rate in mg/kg/min:
// 21.158 - 0.09*waist - 3.407*htn - 0.551*HbA1c, with htn being 1 when the
// hypertension flag is set. Absent when waist <= 0 or HbA1c <= 0.
func ComputeEGDR(in schema.LabInputs) schema.IndexValue {
	if in.Waist <= 0 || in.HbA1c <= 0 {
		return schema.NoIndex()
	}
	htn := 0.0
	if in.Hypertension {
		htn = 1.0
	}
	return schema.SomeIndex(egdrIntercept - egdrWaistCoeff*in.Waist - egdrHTNCoeff*htn - egdrHbA1cCoeff*in.HbA1c)
}

// ComputeIndices runs every calculator over one panel.
func ComputeIndices(in schema.LabInputs) schema.IndexSet {
	return schema.IndexSet{
		NLR:    ComputeNLR(in),
		PLR:    ComputePLR(in),
		TyG:    ComputeTyG(in),
		METSIR: ComputeMETSIR(in),
		EGDR:   ComputeEGDR(in),
	}
}
