// Package seed holds the fixture dataset loaded into an empty store on
// first open, plus the deterministic generators for the larger consultant
// and engagement collections.
package seed

import "nexusportal/internal/portal"

// CurrentUser is the fixed signed-in user of the single-session portal.
var CurrentUser = portal.User{
	ID:         "u-123",
	Name:       "Alex Chen",
	Role:       "Senior Consultant",
	Department: "Digital Transformation",
	Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256&q=80",
}

// CurrentUserProfile is the fixed profile behind the profile view.
var CurrentUserProfile = portal.UserProfile{
	User:     CurrentUser,
	Email:    "alex.chen@nexus.com",
	Phone:    "+1 (555) 012-3456",
	Location: "New York - 3WTC",
	Timezone: "EST (UTC-5)",
	Tenure:   "5 Years, 3 Months",
	Path:     "Product Engineering",
	Guild:    "Software, Cloud, Cyber and Architecture",
	Languages: []string{
		"English (Native)", "Mandarin (Fluent)", "Spanish (Conversational)",
	},
	Expertise: []string{
		"Digital Strategy", "Cloud Architecture", "React/Node.js",
		"Enterprise AI", "Agile Leadership",
	},
	Bio: "Senior digital consultant with a focus on modernizing legacy enterprise systems. Proven track record in leading cross-functional teams for Fortune 500 clients in FinTech and Healthcare sectors.",
	WorkExperience: []portal.WorkExperience{
		{
			ID:          "w-1",
			Company:     "Nexus Corp",
			Role:        "Senior Consultant",
			StartDate:   "Jan 2022",
			EndDate:     "Present",
			Location:    "New York, NY",
			Description: `Leading digital transformation initiatives for key accounts. Spearheaded the internal "Nexus AI" adoption program.`,
		},
		{
			ID:          "w-2",
			Company:     "Nexus Corp",
			Role:        "Associate Consultant",
			StartDate:   "Aug 2018",
			EndDate:     "Dec 2021",
			Location:    "Boston, MA",
			Description: "Worked on cloud migration projects and developed custom analytics dashboards for retail clients.",
		},
		{
			ID:          "w-3",
			Company:     "TechFlow Solutions",
			Role:        "Software Engineer",
			StartDate:   "Jun 2016",
			EndDate:     "Jul 2018",
			Location:    "San Francisco, CA",
			Description: "Full-stack development for a high-growth SaaS startup. Focused on scalability and API design.",
		},
	},
	Education: []portal.Education{
		{ID: "e-1", Institution: "Massachusetts Institute of Technology", Degree: "Master of Science", Field: "Computer Science", Year: "2016"},
		{ID: "e-2", Institution: "University of California, Berkeley", Degree: "Bachelor of Science", Field: "Electrical Engineering & CS", Year: "2014"},
	},
	Certifications: []portal.Certification{
		{ID: "c-1", Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023"},
		{ID: "c-2", Name: "Certified Scrum Master", Issuer: "Scrum Alliance", Date: "2022"},
		{ID: "c-3", Name: "Google Professional Cloud Architect", Issuer: "Google Cloud", Date: "2021"},
	},
	OfficeHistory: []portal.OfficeStay{
		{Location: "New York - 3WTC", Period: "Jan 2022 - Present"},
		{Location: "Boston - Seaport", Period: "Aug 2018 - Dec 2021"},
	},
}

// Tasks returns the fixture task set.
func Tasks() []portal.Task {
	return []portal.Task{
		{
			ID:          "t-1",
			Title:       "Mandatory Security Review",
			Description: "Annual cybersecurity awareness training. Required for system access renewal.",
			DueDate:     "2023-11-17",
			Priority:    portal.PriorityHigh,
			Type:        portal.TaskTraining,
			Progress:    15,
		},
		{
			ID:          "t-2",
			Title:       "Year-End Peer Evaluations",
			Description: "Provide 360 feedback for Sarah Jones and Mike Ross.",
			DueDate:     "2023-11-20",
			Priority:    portal.PriorityHigh,
			Type:        portal.TaskEvaluation,
			Progress:    0,
		},
		{
			ID:          "t-3",
			Title:       "Project Alpha Prep",
			Description: "Review client background and technical requirements for the upcoming assignment.",
			DueDate:     "2023-11-25",
			Priority:    portal.PriorityMedium,
			Type:        portal.TaskProjectPrep,
			Progress:    45,
		},
		{
			ID:          "t-4",
			Title:       "Expense Report: Q3 Travel",
			Description: "Submit receipts for the NYC onsite visit.",
			DueDate:     "2023-11-18",
			Priority:    portal.PriorityLow,
			Type:        portal.TaskAdmin,
			Progress:    0,
		},
	}
}

// Announcements returns the fixture announcement set.
func Announcements() []portal.Announcement {
	return []portal.Announcement{
		{
			ID:       "a-1",
			Title:    "New Global Mobility Policy",
			Category: portal.CategoryHR,
			Date:     "Today",
			Summary:  "Updated guidelines for international transfers and remote work flexibility starting Q1 2024.",
		},
		{
			ID:       "a-2",
			Title:    "Q3 Financial Results Townhall",
			Category: portal.CategoryStrategic,
			Date:     "Yesterday",
			Summary:  "Join leadership for a review of Q3 performance. Revenue up 15% YoY.",
		},
		{
			ID:       "a-3",
			Title:    "GenAI Tool Rollout",
			Category: portal.CategoryTech,
			Date:     "2 days ago",
			Summary:  "Nexus Assistant is now available for all consultants to aid in research.",
		},
	}
}

// KnowledgeDocs returns the fixture document set used both for knowledge
// base search and assistant grounding.
func KnowledgeDocs() []portal.KnowledgeDoc {
	return []portal.KnowledgeDoc{
		{
			ID:          "k-1",
			Title:       "Remote Work Policy 2024",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-10-15",
			Tags:        []string{"HR", "Remote", "Benefits"},
			Content:     "Employees are permitted to work remotely up to 3 days a week. Core hours are 10am-3pm EST. International remote work requires VP approval.",
		},
		{
			ID:          "k-2",
			Title:       "Expense Reimbursement Guidelines",
			Type:        portal.DocGuide,
			LastUpdated: "2023-09-01",
			Tags:        []string{"Finance", "Travel"},
			Content:     "Meals are reimbursed up to $75/day. Flights must be booked via NexusTravel. Receipts required for expenses over $50.",
		},
		{
			ID:          "k-5",
			Title:       "The State of AI in 2024: Generative AI's Breakout Year",
			Type:        portal.DocReport,
			LastUpdated: "2024-01-10",
			Tags:        []string{"Strategy", "AI", "Technology"},
			Content:     "Generative AI is poised to add $2.6 trillion to $4.4 trillion annually to the global economy. Key value drivers include customer operations, marketing and sales, software engineering, and R&D. 75% of value falls across these four use cases. Leaders must move from experimentation to scaling value.",
		},
		{
			ID:          "k-6",
			Title:       "CEO Excellence: The Six Mindsets",
			Type:        portal.DocGuide,
			LastUpdated: "2023-11-05",
			Tags:        []string{"Leadership", "Strategy", "Management"},
			Content:     `Based on interviews with 67 top-performing CEOs. The six mindsets are: 1. Be bold (Strategy), 2. Treat the soft stuff as the hard stuff (Organization), 3. Solve for the team psychology (Team & Processes), 4. Help directors help the business (Board Engagement), 5. Start with "Why?" (External Stakeholders), 6. Do what only you can do (Personal Effectiveness).`,
		},
		{
			ID:          "k-7",
			Title:       "The Net-Zero Transition: Costs and Opportunities",
			Type:        portal.DocReport,
			LastUpdated: "2023-12-01",
			Tags:        []string{"Sustainability", "Energy", "Global Economy"},
			Content:     "Achieving net-zero emissions by 2050 would require $9.2 trillion in annual average spending on physical assets, $3.5 trillion more than today. This transition offers significant growth opportunities for first movers in low-emissions products and support services, despite the risks of stranded assets and economic dislocation.",
		},
		{
			ID:          "k-10",
			Title:       "Code of Conduct & Ethics",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-01-01",
			Tags:        []string{"HR", "Compliance", "Legal"},
			Content:     "All employees must maintain the highest standards of professional conduct. This includes honesty, integrity, and fairness in all dealings with clients, colleagues, and the public. Discrimination, harassment, and unethical behavior are strictly prohibited.",
		},
		{
			ID:          "k-11",
			Title:       "Anti-Discrimination & Harassment Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-01-01",
			Tags:        []string{"HR", "Compliance"},
			Content:     "Nexus Corp has zero tolerance for discrimination or harassment based on race, color, religion, sex, national origin, age, disability, or genetics. Violations should be reported to HR immediately and will result in disciplinary action up to termination.",
		},
		{
			ID:          "k-12",
			Title:       "Workplace Health & Safety (WHS)",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-11-20",
			Tags:        []string{"Operations", "Safety"},
			Content:     "We are committed to providing a safe work environment. Employees must report all accidents, injuries, and unsafe conditions to the Operations Manager immediately. Emergency exits must remain clear at all times.",
		},
		{
			ID:          "k-13",
			Title:       "Data Privacy & Protection Policy (GDPR/CCPA)",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-02-01",
			Tags:        []string{"IT", "Compliance", "Legal"},
			Content:     "Personal data must be processed lawfully, transparently, and securely. Client data is confidential. Access is restricted to authorized personnel only. Data breaches must be reported to the Data Protection Officer within 24 hours.",
		},
		{
			ID:          "k-14",
			Title:       "Information Security & Acceptable Use",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-02-15",
			Tags:        []string{"IT", "Security"},
			Content:     "Company devices are for business use. Passwords must be at least 12 characters and changed every 90 days. Multi-factor authentication (MFA) is mandatory. Do not share credentials. Phishing attempts should be reported to IT Security.",
		},
		{
			ID:          "k-15",
			Title:       "Social Media Policy",
			Type:        portal.DocGuide,
			LastUpdated: "2023-12-10",
			Tags:        []string{"HR", "Marketing"},
			Content:     "Employees are responsible for their personal social media posts. Do not post confidential company information. When discussing company matters, clarify that views are your own. Harassment on social media is subject to disciplinary action.",
		},
		{
			ID:          "k-16",
			Title:       "Leave & Time Off Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-01-05",
			Tags:        []string{"HR", "Benefits"},
			Content:     "Full-time employees accrue 20 days of Annual Leave per year. Sick Leave is 10 days per year. Requests for leave must be submitted via the HR Portal at least 2 weeks in advance for planned absences.",
		},
		{
			ID:          "k-17",
			Title:       "Parental Leave Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-01-05",
			Tags:        []string{"HR", "Benefits"},
			Content:     "Nexus offers 12 weeks of fully paid primary caregiver leave and 4 weeks of secondary caregiver leave for birth or adoption. Returning parents may request a phased return-to-work schedule.",
		},
		{
			ID:          "k-18",
			Title:       "Performance Management Framework",
			Type:        portal.DocGuide,
			LastUpdated: "2023-10-01",
			Tags:        []string{"HR", "Development"},
			Content:     "Performance is reviewed biannually (June & Dec). The process involves self-assessment, peer feedback (360), and manager review. Ratings determine bonus eligibility and promotion readiness.",
		},
		{
			ID:          "k-19",
			Title:       "Disciplinary & Grievance Procedure",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-09-15",
			Tags:        []string{"HR", "Legal"},
			Content:     "Grievances should be raised first with the direct manager, then HR. Disciplinary steps: 1. Verbal Warning, 2. Written Warning, 3. Final Warning, 4. Termination. Serious misconduct may result in immediate dismissal.",
		},
		{
			ID:          "k-20",
			Title:       "Conflict of Interest Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-11-30",
			Tags:        []string{"Legal", "Compliance"},
			Content:     "Employees must disclose any outside employment, investments, or relationships that could conflict with company interests. Approval from Legal is required for any external board seats.",
		},
		{
			ID:          "k-21",
			Title:       "Whistleblower Protection Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-01-20",
			Tags:        []string{"Legal", "Compliance"},
			Content:     "Employees can report misconduct anonymously via the Ethics Hotline. Nexus Corp strictly prohibits retaliation against anyone who reports a concern in good faith.",
		},
		{
			ID:          "k-22",
			Title:       "Travel & Entertainment (T&E) Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-12-01",
			Tags:        []string{"Finance", "Travel"},
			Content:     "Economy class for flights under 6 hours. Business class allowed for 6+ hours. Hotel cap is $300/night in major cities. Client entertainment is capped at $150/person. All expenses require receipts.",
		},
		{
			ID:          "k-23",
			Title:       "Procurement & Vendor Management",
			Type:        portal.DocGuide,
			LastUpdated: "2023-11-15",
			Tags:        []string{"Operations", "Finance"},
			Content:     "Purchases over $5,000 require three competitive bids. New vendors must undergo a security and financial risk assessment. Purchase Orders (POs) must be approved before services begin.",
		},
		{
			ID:          "k-24",
			Title:       "Intellectual Property (IP) Agreement",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-08-01",
			Tags:        []string{"Legal"},
			Content:     "All work created by employees during employment belongs to Nexus Corp. Employees must not disclose trade secrets or proprietary methodologies to third parties during or after employment.",
		},
		{
			ID:          "k-25",
			Title:       "Recruitment & Referral Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2024-02-10",
			Tags:        []string{"HR", "Talent"},
			Content:     "We are an Equal Opportunity Employer. Open roles are posted internally for 5 days. Employee Referral Bonus: $2,000 for successful hires, paid after 90 days of tenure.",
		},
		{
			ID:          "k-26",
			Title:       "Termination & Offboarding Checklist",
			Type:        portal.DocGuide,
			LastUpdated: "2024-01-15",
			Tags:        []string{"HR", "IT"},
			Content:     "Resignation requires 2 weeks notice (4 weeks for senior roles). On last day: Return laptop/badge, complete exit interview, and transfer knowledge. IT will revoke access at 5 PM on the final day.",
		},
		{
			ID:          "k-27",
			Title:       "Environmental & Sustainability (ESG)",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-10-20",
			Tags:        []string{"Strategy", "Operations"},
			Content:     "Nexus aims to reduce its carbon footprint by 20% by 2025. Offices encourage recycling and paperless workflows. Travel should be minimized in favor of video conferencing where possible.",
		},
		{
			ID:          "k-28",
			Title:       "Substance Abuse & Drug-Free Workplace",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-09-01",
			Tags:        []string{"HR", "Safety"},
			Content:     "The use, possession, or sale of illegal drugs or alcohol on company premises is prohibited. Employees under the influence while working will face disciplinary action.",
		},
		{
			ID:          "k-29",
			Title:       "Gift & Hospitality Policy",
			Type:        portal.DocPolicy,
			LastUpdated: "2023-11-10",
			Tags:        []string{"Compliance", "Legal"},
			Content:     "Employees cannot accept gifts valued over $100 from clients or vendors. Gifts of cash or securities are strictly prohibited. All gifts received must be declared in the Gift Register.",
		},
	}
}

// FeedbackRequests returns the fixture 360 feedback inbox.
func FeedbackRequests() []portal.FeedbackRequest {
	return []portal.FeedbackRequest{
		{
			ID:      "f-1",
			From:    portal.User{ID: "u-2", Name: "Sarah Jones", Role: "Associate", Department: "Strategy", Avatar: "https://i.pravatar.cc/150?u=2"},
			Type:    portal.FeedbackPeerReview,
			Status:  portal.FeedbackPending,
			DueDate: "2023-11-20",
		},
		{
			ID:      "f-2",
			From:    portal.User{ID: "u-3", Name: "Mike Ross", Role: "Partner", Department: "Legal", Avatar: "https://i.pravatar.cc/150?u=3"},
			Type:    portal.FeedbackProjectReview,
			Status:  portal.FeedbackPending,
			DueDate: "2023-11-22",
		},
	}
}
