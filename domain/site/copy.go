package site

const media = "https://static.wixstatic.com/media/"

// Home is the home page copy.
var Home = HomeView{
	Hero: Hero{
		Heading: "Streamlining Operations,",
		Accent:  "Delivering Results",
		Lead: "Whatever stage you're in, we help build your operation the right way. " +
			"Layout & design, shelving setup, logistics, software - we handle the details so you can handle the growth.",
		CTAs: []CTA{
			{Label: "Explore Our Services", Href: "/services", Primary: true, Arrow: true},
			{Label: "Get Started Today", Href: "/contact"},
		},
		Image: &Image{
			Src: media + "aa11aa_7f012ba9e82e4abc9a93a05a5f5164e8~mv2.png",
			Alt: "Modern retail store interior with shelving, bright lighting, and professional layout design",
		},
	},
	Overview: Intro{
		Heading: "Comprehensive Solutions for Every Operation",
		Lead:    "From planning to execution, we provide end-to-end services that transform your vision into reality.",
	},
	Areas: []Feature{
		{
			Icon:  "store",
			Title: "Retail Operations",
			Description: "Opening, relocating, or expanding your retail space? We handle layout design, " +
				"shelving setup, and operational workflows to maximize efficiency.",
			Href:      "/services#retail",
			LinkLabel: "Learn More",
		},
		{
			Icon:  "building",
			Title: "Commercial Solutions",
			Description: "Get started on stronger footing with our comprehensive planning and implementation " +
				"services for commercial operations and workflows.",
			Href:      "/services#commercial",
			LinkLabel: "Learn More",
		},
		{
			Icon:  "warehouse",
			Title: "Warehouse Management",
			Description: "Bring order to every inch with our warehouse planning, inventory systems, " +
				"and logistics coordination that turns operations into well-oiled machines.",
			Href:      "/services#warehouse",
			LinkLabel: "Learn More",
		},
	},
	Process: ProcessBlock{
		Heading: "Hundreds of moving parts.",
		Lead: "We handle every single one. Planning, design, fixtures, logistics, staffing, " +
			"software. All under one expert team.",
		Steps: []string{
			"Layout & Design Planning",
			"Fixtures & Equipment Setup",
			"Logistics Coordination",
			"Staffing & Training",
			"Software Implementation",
		},
		Image: Image{
			Src: media + "aa11aa_7325a647275d4cae94b591c94289d2a7~mv2.png",
			Alt: "Logistics and warehouse operations with conveyor belt system and organized inventory management",
		},
	},
	Calm: StoryBlock{
		Heading: "The calm instead of the storm.",
		Paragraphs: []string{
			"Anchor Point Group brings order to every inch. From layout planning to inventory " +
				"systems and training, we turn operations into well-oiled machines.",
			"So your business doesn't just open. It opens smoothly.",
		},
		CTA: &CTA{Label: "Start Your Project", Href: "/contact", Primary: true, Arrow: true},
		Image: Image{
			Src: media + "aa11aa_f609c4d77df8484dacf173e705d8553c~mv2.png",
			Alt: "Business operations workflow diagram with gears and process optimization visualization",
		},
	},
	Closing: Banner{
		Heading: "You're only as strong as your setup.",
		Lead: "We structure retail, commercial, and warehouse operations for maximum efficiency. " +
			"Design coordination, inventory systems, staff onboarding: you name it, we manage it.",
		CTAs: []CTA{
			{Label: "View All Services", Href: "/services", Primary: true},
			{Label: "Get In Touch", Href: "/contact"},
		},
	},
}

// Services is the services page copy. Area IDs are the in-page anchors the
// footer links to.
var Services = ServicesView{
	Hero: Hero{
		Heading: "Complete Solutions for Every Operation",
		Lead: "From initial planning to final implementation, we provide comprehensive services " +
			"that streamline your retail, commercial, and warehouse operations.",
	},
	Areas: []ServiceArea{
		{
			ID:    "retail",
			Icon:  "store",
			Title: "Retail Operations",
			Description: "Opening, relocating, or expanding your retail space? We handle every detail " +
				"from layout design to shelving setup, ensuring your store operates at peak efficiency from day one.",
			Highlights: []Feature{
				{Icon: "layout", Title: "Store Layout Design"},
				{Icon: "pen", Title: "Fixture Planning"},
				{Icon: "settings", Title: "Equipment Setup"},
				{Icon: "users", Title: "Staff Training"},
			},
			CTA: CTA{Label: "Start Your Retail Project", Href: "/contact", Primary: true, Arrow: true},
			Image: Image{
				Src: media + "aa11aa_1a0f72df4eba4032818e2452369ae8d7~mv2.jpg",
				Alt: "3D illustration of a modern retail store with colorful design elements",
			},
		},
		{
			ID:    "commercial",
			Icon:  "building",
			Title: "Commercial Solutions",
			Description: "Get started on stronger footing with our comprehensive planning and implementation " +
				"services. We help you build operational workflows that scale with your business growth.",
			Highlights: []Feature{
				{Icon: "layout", Title: "Workflow Design"},
				{Icon: "settings", Title: "Software Integration"},
				{Icon: "users", Title: "Team Coordination"},
				{Icon: "pen", Title: "Process Optimization"},
			},
			CTA: CTA{Label: "Explore Commercial Services", Href: "/contact", Primary: true, Arrow: true},
			Image: Image{
				Src: media + "aa11aa_aa3e6019d62046c0a623498728bdcd38~mv2.jpg",
				Alt: "3D illustration of computer monitor with gears representing operational workflows",
			},
			ImageFirst: true,
		},
		{
			ID:    "warehouse",
			Icon:  "warehouse",
			Title: "Warehouse Management",
			Description: "Bring order to every inch with our warehouse planning and inventory systems. " +
				"We coordinate logistics that turn your operations into well-oiled machines.",
			Highlights: []Feature{
				{Icon: "layout", Title: "Space Planning"},
				{Icon: "truck", Title: "Logistics Coordination"},
				{Icon: "settings", Title: "Inventory Systems"},
				{Icon: "users", Title: "Staff Training"},
			},
			CTA: CTA{Label: "Optimize Your Warehouse", Href: "/contact", Primary: true, Arrow: true},
			Image: Image{
				Src: media + "aa11aa_ada7eb9ff939431f9a481b4303620693~mv2.jpg",
				Alt: "3D illustration of a forklift with boxes representing warehouse operations",
			},
		},
	},
	Portfolio: Intro{
		Heading: "Comprehensive Service Portfolio",
		Lead:    "Every aspect of your operation covered by our expert team.",
	},
	Offerings: []Feature{
		{Icon: "layout", Title: "Planning & Design", Description: "Strategic layout planning and design coordination for optimal space utilization and workflow efficiency."},
		{Icon: "truck", Title: "Logistics Coordination", Description: "End-to-end logistics management ensuring smooth operations from setup to daily workflows."},
		{Icon: "users", Title: "Staffing Solutions", Description: "Comprehensive staffing services including recruitment, training, and ongoing support."},
		{Icon: "settings", Title: "Software Implementation", Description: "Integration of operational software systems and training for maximum efficiency."},
		{Icon: "pen", Title: "Setup Coordination", Description: "Complete setup coordination from fixtures to equipment installation and testing."},
		{Icon: "arrow", Title: "Ongoing Support", Description: "Continuous support and optimization to ensure your operations run smoothly long-term."},
	},
	Closing: Banner{
		Heading: "Ready to Transform Your Operations?",
		Lead: "Let's discuss how we can streamline your retail, commercial, or warehouse operations " +
			"for maximum efficiency and growth.",
		CTAs: []CTA{{Label: "Get Started Today", Href: "/contact", Primary: true, Arrow: true}},
	},
}

// About is the about page copy.
var About = AboutView{
	Hero: Hero{
		Heading: "Building Operations,",
		Accent:  "Building Success",
		Lead: "Anchor Point Group was founded on a simple belief: every business deserves operational excellence. " +
			"We transform the chaos of growth into organized, efficient systems that drive real results.",
		CTAs: []CTA{
			{Label: "Let's Work Together", Href: "/contact", Primary: true, Arrow: true},
			{Label: "View Services", Href: "/services"},
		},
		Image: &Image{
			Src: media + "aa11aa_f609c4d77df8484dacf173e705d8553c~mv2.png",
			Alt: "Anchor Point Group team collaborating on business operations strategy",
		},
	},
	Story: StoryBlock{
		Heading: "Our Story",
		Paragraphs: []string{
			"Anchor Point Group was born from a frustration we witnessed repeatedly: talented entrepreneurs " +
				"and business owners struggling with the operational side of their growth. They had great products " +
				"and services, but the logistics, layout, staffing, and systems were holding them back.",
			"We decided to change that. By bringing together experts in retail operations, warehouse management, " +
				"logistics, and business systems, we created a team that could handle every moving part of a " +
				"business launch or expansion.",
			"Today, we've helped dozens of businesses across retail, commercial, and warehouse sectors " +
				"streamline their operations and achieve sustainable growth.",
		},
		Image: Image{
			Src: media + "aa11aa_70b4e4f6fbf14722bf71dd2634b8bbc7~mv2.png",
			Alt: "Anchor Point Group office and operations center",
		},
	},
	Mission: MissionBlock{
		Intro: Intro{
			Heading: "Our Mission & Vision",
			Lead:    "We're committed to transforming how businesses approach operations and growth.",
		},
		Mission: "To empower businesses with end-to-end operational solutions that transform complexity into clarity, " +
			"enabling them to focus on growth while we handle the details that matter.",
		Vision: "To be the trusted operational partner for businesses nationwide, known for turning ambitious visions " +
			"into smoothly running, profitable operations that scale sustainably.",
	},
	Values: Intro{
		Heading: "Our Core Values",
		Lead:    "These principles guide every decision we make and every project we undertake.",
	},
	Core: []Feature{
		{Icon: "target", Title: "Excellence", Description: "We deliver exceptional results through meticulous planning, attention to detail, and commitment to quality in every project."},
		{Icon: "heart", Title: "Integrity", Description: "We build trust through transparency, honesty, and ethical practices in all our business relationships and operations."},
		{Icon: "users", Title: "Collaboration", Description: "We believe in partnering closely with our clients, understanding their needs, and working as an extension of their team."},
	},
	Partner: PartnerBlock{
		Heading: "Why Partner With Us",
		Points: []Feature{
			{Title: "Comprehensive Expertise", Description: "From layout design to software implementation, we handle every aspect of your operational needs under one roof."},
			{Title: "Proven Track Record", Description: "We've successfully guided dozens of businesses through launches, relocations, and expansions with measurable results."},
			{Title: "Dedicated Partnership", Description: "We don't just deliver projects. We become an extension of your team, invested in your long-term success."},
			{Title: "Ongoing Support", Description: "Our relationship doesn't end at launch. We provide continuous support and optimization to ensure sustained success."},
		},
		Image: Image{
			Src: media + "aa11aa_7325a647275d4cae94b591c94289d2a7~mv2.png",
			Alt: "Team collaboration and partnership in action",
		},
	},
	Closing: Banner{
		Heading: "Ready to Transform Your Operations?",
		Lead: "Let's discuss how Anchor Point Group can help you build the operational foundation " +
			"for sustainable growth.",
		CTAs: []CTA{
			{Label: "Get In Touch", Href: "/contact", Primary: true},
			{Label: "Explore Services", Href: "/services"},
		},
	},
}
