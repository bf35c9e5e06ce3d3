package models

func seedUsers(db *Database) {
	db.Users[string(RoleTriage)] = ""
	db.Users[string(RoleDoctor)] = ""
}

func seedPatients(db *Database) {
	stock := []struct {
		name, surname string
		dni           DNI
		code          int64
		state         State
		sex           Sex
	}{
		{"Tristán", "Tiburcio Rodriguez", DNI{10000001, "A"}, 900000001, StateRegistered, SexMale},
		{"Maura", "Lope Nieves", DNI{10000002, "B"}, 900000002, StateWaiting, SexFemale},
		{"Pastor", "Marino Salcedo", DNI{10000003, "C"}, 900000003, StateRegistered, SexUnknown},
		{"Ascensión", "Lucía Chávez", DNI{10000004, "D"}, 900000004, StateAdmitted, SexUnknown},
		{"Samanta", "Machado Guitiérrez", DNI{10000005, "E"}, 900000005, StateDischarged, SexFemale},
		{"Leoncio", "Perla Orellana", DNI{10000006, "F"}, 900000006, StateDischarged, SexMale},
		{"Felisa", "Laura Guerra", DNI{10000007, "G"}, 900000007, StateRegistered, SexFemale},
	}
	for _, s := range stock {
		p := &Patient{
			General: GeneralData{
				Name:    s.name,
				Surname: s.surname,
				DNI:     s.dni,
				SNSCode: s.code,
				State:   s.state,
			},
			Personal: PersonalData{Sex: s.sex},
		}
		db.Patients[s.code] = p
	}

	felisa := db.Patients[900000007]
	felisa.Bank = BankData{AccountNumber: "99944433212", Insured: true, Insurer: "ADESLAS"}
	felisa.Clinical.AssignedDoctor = "Pepito Juan Froilán"
	felisa.Personal.Birthdate = Birthdate{Day: 23, Month: 5, Year: 1992}
	felisa.Personal.Address = "Calle Falsa 1,2,3"
	felisa.Personal.Email = "email@ejemplo.net"
}
