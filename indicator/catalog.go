package indicator

// categories lists bin categories in display order
var categories = []Category{
	{ID: "1", Name: "Prior Information"},
	{ID: "3", Name: "Treatment Procedures"},
	{ID: "4", Name: "Job Descriptions"},
	{ID: "5", Name: "Staff Requirements"},
	{ID: "6", Name: "Staffing Levels"},
	{ID: "7", Name: "Culture of Safety"},
	{ID: "8", Name: "Radioactive Materials"},
	{ID: "9", Name: "Emergency Planning"},
	{ID: "10", Name: "Infection Control"},
	{ID: "11", Name: "Information Systems"},
	{ID: "13", Name: "Peer Review"},
	{ID: "14", Name: "Patient Care"},
}

// entries lists evidence indicators in catalog order
var entries = []Entry{
	{Indicator: "1.3", Title: "Sending prior radiation information", Description: "SOP on sending prior radiation therapy information to new providers when requested", Category: "Prior Information"},
	{Indicator: "3.1", Title: "Data transfer", Description: "SOP on verification of patient identity during information and/or data transfer", Category: "Treatment Procedures"},
	{Indicator: "3.3.1", Title: "Simulation", Description: "SOP for simulation procedures", Category: "Treatment Procedures"},
	{Indicator: "3.3.2", Title: "EBRT", Description: "SOP for EBRT (2D, 3D, 4D, IMRT/VMAT)", Category: "Treatment Procedures"},
	{Indicator: "3.3.3", Title: "SRS", Description: "SOP for SRS", Category: "Treatment Procedures"},
	{Indicator: "3.3.4", Title: "SBRT", Description: "SOP for SBRT/SABR", Category: "Treatment Procedures"},
	{Indicator: "3.3.7", Title: "HDR", Description: "SOP for HDR", Category: "Treatment Procedures"},
	{Indicator: "3.3.8", Title: "LDR", Description: "SOP for LDR", Category: "Treatment Procedures"},
	{Indicator: "3.3.9", Title: "RPT", Description: "SOP for RPT", Category: "Treatment Procedures"},
	{Indicator: "3.3.10", Title: "Microspheres", Description: "SOP for microspheres", Category: "Treatment Procedures"},
	{Indicator: "3.3.12", Title: "Superficial", Description: "SOP for superficial radiation, including orthovoltage", Category: "Treatment Procedures"},
	{Indicator: "3.3.13", Title: "IGRT/SGRT", Description: "SOP on IGRT/SGRT", Category: "Treatment Procedures"},
	{Indicator: "3.3.14", Title: "Motion management", Description: "SOP for motion management", Category: "Treatment Procedures"},
	{Indicator: "3.3.15", Title: "Emergent radiation therapy", Description: "SOP for emergent radiation therapy", Category: "Treatment Procedures"},
	{Indicator: "3.3.16", Title: "CIED", Description: "SOP for EBRT treatments for patients with cardiac implanted electronic devices", Category: "Treatment Procedures"},
	{Indicator: "4.1.1", Title: "Radiation oncologists", Description: "Job description for radiation oncologists", Category: "Job Descriptions"},
	{Indicator: "4.1.2", Title: "Medical physicists", Description: "Job description for medical physicists", Category: "Job Descriptions"},
	{Indicator: "4.1.3", Title: "Radiation therapists", Description: "Job description for radiation therapists", Category: "Job Descriptions"},
	{Indicator: "4.1.4", Title: "Dosimetrists", Description: "Job description for medical dosimetrists", Category: "Job Descriptions"},
	{Indicator: "4.1.5", Title: "Oncology nurses", Description: "Job description for radiation oncology nurses", Category: "Job Descriptions"},
	{Indicator: "4.1.6", Title: "Non-physician providers", Description: "Job description for radiation oncology non-physician providers", Category: "Job Descriptions"},
	{Indicator: "4.1.7", Title: "Therapist and Physicist Assistants", Description: "Job description for therapist and/or physicist assistants", Category: "Job Descriptions"},
	{Indicator: "4.1.8", Title: "Practice manager/administrator", Description: "Job description for the practice manager/administrator", Category: "Job Descriptions"},
	{Indicator: "4.1.9", Title: "Radiation Safety Officer", Description: "Job description for the Radiation Safety Officer", Category: "Job Descriptions"},
	{Indicator: "4.2", Title: "Medical Director", Description: "Job description for the Medical Director", Category: "Job Descriptions"},
	{Indicator: "5.1", Title: "Board eligibility requirements", Description: "SOP for staff Board certification requirements", Category: "Staff Requirements"},
	{Indicator: "5.2", Title: "Licensure and certification", Description: "Policy on verification of licensure and Board certification status", Category: "Staff Requirements"},
	{Indicator: "5.3", Title: "Staff on-boarding", Description: "Evidence of staff on-boarding", Category: "Staff Requirements"},
	{Indicator: "5.4", Title: "Annual staff training", Description: "Evidence of annual staff training", Category: "Staff Requirements"},
	{Indicator: "6.1", Title: "Staffing levels", Description: "Staffing policy and completed staffing table", Category: "Staffing Levels"},
	{Indicator: "6.2", Title: "Temporary personnel/locums", Description: "SOP on temporary personnel/locums", Category: "Staffing Levels"},
	{Indicator: "7.1", Title: "Culture of Safety", Description: "SOP on the Culture of Safety", Category: "Culture of Safety"},
	{Indicator: "7.3", Title: "Interdisciplinary meetings", Description: "Minutes from the two most recent interdisciplinary quality/safety meetings", Category: "Culture of Safety"},
	{Indicator: "8.3", Title: "Radioactive materials", Description: "SOP on radioactive material storage, handling and waste", Category: "Radioactive Materials"},
	{Indicator: "9.1", Title: "Emergency preparation and planning", Description: "SOP for emergency response to equipment and facility related emergencies", Category: "Emergency Planning"},
	{Indicator: "9.2", Title: "Emergency response", Description: "SOP for emergency response for patient-related emergencies", Category: "Emergency Planning"},
	{Indicator: "10.3", Title: "Infection Control", Description: "SOP on infection control", Category: "Infection Control"},
	{Indicator: "11.1", Title: "Information systems", Description: "SOP on information systems management", Category: "Information Systems"},
	{Indicator: "13.1", Title: "Peer review", Description: "SOP on intradisciplinary peer review", Category: "Peer Review"},
	{Indicator: "14.1", Title: "Informed consent", Description: "SOP for informed consent", Category: "Patient Care"},
	{Indicator: "14.2", Title: "Translation services", Description: "SOP for communicating with patients with language or other communication barriers", Category: "Patient Care"},
	{Indicator: "14.5", Title: "Financial education", Description: "SOP for financial education", Category: "Patient Care"},
	{Indicator: "14.7", Title: "Patient experience", Description: "SOP on patient feedback", Category: "Patient Care"},
}
