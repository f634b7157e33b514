package classifier

// exactMappings pins previously seen filenames to their bins.
// Keys are matched case-sensitively against the full filename.
var exactMappings = map[string]string{
	"200 - Previous Treatment Record Retrieval.TBA.pdf":                                                "1.3",
	"106 - radiation oncology patient verification during electronic transfer.a_1.pdf":                 "3.1",
	"skcc_simulation new_1.pdf":                                                                        "3.3.1",
	"skcc_ebrt_imrt_vmat_1.pdf":                                                                        "3.3.2",
	"SKCC_PP_231_SRS SOP.pdf":                                                                          "3.3.3",
	"skcc_sitespecificsbrtpnps_1.pdf":                                                                  "3.3.4",
	"530+550.pdf":                                                                                      "3.3.7",
	"SOPs_RTPs_RSO+PolicyStat.pdf":                                                                     "3.3.9",
	"RSO-026 Y-90.Sep2.2025(RAS.CMA).pdf":                                                              "3.3.10",
	"statement regarding superficial_1.pdf":                                                            "3.3.12",
	"PP_IGRT+SGRT.pdf":                                                                                 "3.3.13",
	"PP TJUH Motion Management SOP_2025-08-27.pdf":                                                     "3.3.14",
	"SOP_ClinicalSetups_EmergencyTx_2025-09-16.pdf":                                                    "3.3.15",
	"3.3.16 combined cied_1.pdf":                                                                       "3.3.16",
	"RadOnc Job Description 6.2025.pdf":                                                                "4.1.1",
	"medical physicist jd_1.pdf":                                                                       "4.1.2",
	"RadtherapistJDcombined.pdf":                                                                       "4.1.3",
	"Enterprise JD - Dosimetrist II.pdf":                                                               "4.1.4",
	"enterprise jd - registered nurse (acute care)_1.pdf":                                              "4.1.5",
	"Enterprise JD APP Outpatient (1).pdf":                                                             "4.1.6",
	"PhysicsAssistanJobDescription_ForPosting.pdf":                                                     "4.1.7",
	"JD administrator 4.1.8.pdf":                                                                       "4.1.8",
	"tjuh rso full jd v2_1.pdf":                                                                        "4.1.9",
	"medical director combined_1.pdf":                                                                  "4.2",
	"104 - radiation oncology staff licensing & credentialing.a_1.pdf":                                 "5.1",
	"verification of licensure- certification & registration- 200-04_1.pdf":                            "5.2",
	"Onboarding examples combined.pdf":                                                                 "5.3",
	"5.4 Mandatory annual training policy+sampling.pdf":                                                "5.4",
	"Staffing tables+policy 6.1.pdf":                                                                   "6.1",
	"6.2 Locum combined.pdf":                                                                           "6.2",
	"7 Culture of safety combined.pdf":                                                                 "7.1",
	"minutes fom quality safety meetings_1.pdf":                                                        "7.3",
	"530+550+PolicyStat.pdf":                                                                           "8.3",
	"9.1 combined.pdf":                                                                                 "9.1",
	"9.2 Emergency response combined.pdf":                                                              "9.2",
	"301 - Radiation Oncology Infection Prevention Policy.A.pdf":                                       "10.3",
	"Information Systems Access Control and Audit Logging-Monitoring Policy- 126-17.pdf":               "11.1",
	"Radiation Oncology Program Peer Review Practices.docx":                                            "13.1",
	"Informed Consent- 117-03.pdf":                                                                     "14.1",
	"Interpreter and Language Services for Visually Impaired- Limited English Proficiency -112.11.pdf": "14.2",
	"14.5 combined Financial.pdf":                                                                      "14.5",
	"14.7 combined pt experience.pdf":                                                                  "14.7",
}

// keywordHints lists lowercase filename hints per indicator, in evaluation order.
var keywordHints = []Hint{
	{Indicator: "1.3", Keywords: []string{"prior", "radiation", "information", "previous", "treatment", "record"}},
	{Indicator: "3.1", Keywords: []string{"data transfer", "patient identity", "verification", "electronic transfer"}},
	{Indicator: "3.3.1", Keywords: []string{"simulation"}},
	{Indicator: "3.3.2", Keywords: []string{"ebrt", "imrt", "vmat"}},
	{Indicator: "3.3.3", Keywords: []string{"srs"}},
	{Indicator: "3.3.4", Keywords: []string{"sbrt", "sabr"}},
	{Indicator: "3.3.7", Keywords: []string{"hdr"}},
	{Indicator: "3.3.8", Keywords: []string{"ldr"}},
	{Indicator: "3.3.9", Keywords: []string{"rpt"}},
	{Indicator: "3.3.10", Keywords: []string{"microspheres", "y-90", "y90"}},
	{Indicator: "3.3.12", Keywords: []string{"superficial", "orthovoltage"}},
	{Indicator: "3.3.13", Keywords: []string{"igrt", "sgrt"}},
	{Indicator: "3.3.14", Keywords: []string{"motion", "management", "4d-ct"}},
	{Indicator: "3.3.15", Keywords: []string{"emergent", "emergency"}},
	{Indicator: "3.3.16", Keywords: []string{"cied", "cardiac", "implanted", "electronic", "device"}},
	{Indicator: "4.1.1", Keywords: []string{"radiation oncologist", "radonc"}},
	{Indicator: "4.1.2", Keywords: []string{"medical physicist", "physicist jd"}},
	{Indicator: "4.1.3", Keywords: []string{"radiation therapist", "therapist jd"}},
	{Indicator: "4.1.4", Keywords: []string{"dosimetrist"}},
	{Indicator: "4.1.5", Keywords: []string{"oncology nurse", "registered nurse"}},
	{Indicator: "4.1.6", Keywords: []string{"non-physician", "app", "provider"}},
	{Indicator: "4.1.7", Keywords: []string{"assistant", "physics assistant", "therapy assistant"}},
	{Indicator: "4.1.8", Keywords: []string{"practice manager", "administrator"}},
	{Indicator: "4.1.9", Keywords: []string{"radiation safety officer", "rso"}},
	{Indicator: "4.2", Keywords: []string{"medical director"}},
	{Indicator: "5.1", Keywords: []string{"board", "certification", "eligibility"}},
	{Indicator: "5.2", Keywords: []string{"licensure", "certification", "verification"}},
	{Indicator: "5.3", Keywords: []string{"onboarding", "on-boarding"}},
	{Indicator: "5.4", Keywords: []string{"annual", "training", "mandatory"}},
	{Indicator: "6.1", Keywords: []string{"staffing", "levels", "table"}},
	{Indicator: "6.2", Keywords: []string{"locum", "temporary", "personnel"}},
	{Indicator: "7.1", Keywords: []string{"culture", "safety"}},
	{Indicator: "7.3", Keywords: []string{"interdisciplinary", "meetings", "minutes", "quality"}},
	{Indicator: "8.3", Keywords: []string{"radioactive", "materials", "storage", "waste"}},
	{Indicator: "9.1", Keywords: []string{"emergency", "preparation", "planning", "equipment", "facility"}},
	{Indicator: "9.2", Keywords: []string{"emergency", "response", "patient"}},
	{Indicator: "10.3", Keywords: []string{"infection", "control", "prevention"}},
	{Indicator: "11.1", Keywords: []string{"information", "systems", "management", "access"}},
	{Indicator: "13.1", Keywords: []string{"peer", "review"}},
	{Indicator: "14.1", Keywords: []string{"informed", "consent"}},
	{Indicator: "14.2", Keywords: []string{"translation", "interpreter", "language"}},
	{Indicator: "14.5", Keywords: []string{"financial", "education"}},
	{Indicator: "14.7", Keywords: []string{"patient", "experience", "feedback"}},
}
