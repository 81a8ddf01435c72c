package screens

import (
	"fmt"

	"mediscan-kiosk/pkg/intake/disease"
	"mediscan-kiosk/pkg/intake/i18n"
	"mediscan-kiosk/pkg/intake/store"
	"mediscan-kiosk/pkg/intake/wizard"
)

// LanguageScreen lets the patient pick the interface language. The choice
// is persisted and all later screens render in it.
func LanguageScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		t := ctx.Loc.T
		choice, err := choiceList(
			t("languageSelection.title"),
			t("languageSelection.subtitle"),
			[]choiceOption{
				{Label: t("languageSelection.english"), Value: i18n.LangEnglish},
				{Label: t("languageSelection.sindhi"), Value: i18n.LangSindhi},
				{Label: t("languageSelection.urdu"), Value: i18n.LangUrdu},
			})
		if err != nil {
			return nil, err
		}
		if err := ctx.Loc.SetLanguage(choice); err != nil {
			return nil, err
		}
		return choice, nil
	}
}

// AgeScreen records the patient's age bracket, which gates the identity
// document step later in the flow.
func AgeScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		t := ctx.Loc.T
		choice, err := choiceList(
			t("ageVerification.title"),
			t("ageVerification.question"),
			[]choiceOption{
				{Label: t("ageVerification.under18"), Value: store.AgeUnder18},
				{Label: t("ageVerification.above18"), Value: store.AgeAbove18},
			})
		if err != nil {
			return nil, err
		}
		if err := ctx.Store.Set(store.KeyAge, choice); err != nil {
			return nil, fmt.Errorf("persisting age bracket: %w", err)
		}
		return choice, nil
	}
}

// GenderScreen records the patient's gender.
func GenderScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		t := ctx.Loc.T
		choice, err := choiceList(
			t("genderSelection.title"),
			t("genderSelection.question"),
			[]choiceOption{
				{Label: t("genderSelection.male"), Value: "male"},
				{Label: t("genderSelection.female"), Value: "female"},
				{Label: t("genderSelection.other"), Value: "other"},
				{Label: t("genderSelection.preferNotToSay"), Value: "preferNotToSay"},
			})
		if err != nil {
			return nil, err
		}
		if err := ctx.Store.Set(store.KeyGender, choice); err != nil {
			return nil, fmt.Errorf("persisting gender: %w", err)
		}
		return choice, nil
	}
}

// DiseaseScreen records which detection flow the patient wants.
func DiseaseScreen(ctx *Context) wizard.StepFunc {
	return func(any) (any, error) {
		t := ctx.Loc.T
		options := make([]choiceOption, 0, len(disease.All()))
		for _, d := range disease.All() {
			options = append(options, choiceOption{
				Label: t("diseaseSelection." + string(d)),
				Value: string(d),
			})
		}

		choice, err := choiceList(
			t("diseaseSelection.title"),
			t("diseaseSelection.instruction"),
			options)
		if err != nil {
			return nil, err
		}
		if err := ctx.Store.Set(store.KeyDisease, choice); err != nil {
			return nil, fmt.Errorf("persisting disease selection: %w", err)
		}
		return disease.ID(choice), nil
	}
}
