// Package seed holds the static site content every fresh deployment starts
// with, and loads it into Postgres for the persistent storage variant. The
// in-memory variant consumes the same fixtures directly at construction.
package seed

import (
	"context"
	"fmt"
	"time"

	"godivatech-site/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

func intPtr(v int) *int { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var Categories = []domain.Category{
	{ID: 1, Name: "Technology Trends", Slug: "technology-trends"},
	{ID: 2, Name: "Cloud Computing", Slug: "cloud-computing"},
	{ID: 3, Name: "Cybersecurity", Slug: "cybersecurity"},
	{ID: 4, Name: "AI & Machine Learning", Slug: "ai-machine-learning"},
	{ID: 5, Name: "Software Development", Slug: "software-development"},
}

var BlogPosts = []domain.BlogPost{
	{
		ID:          1,
		Title:       "The Future of Edge Computing in 2023 and Beyond",
		Slug:        "future-of-edge-computing",
		Excerpt:     "Explore how edge computing is revolutionizing data processing and enabling new applications in IoT, autonomous vehicles, and more.",
		Content:     "Edge computing is revolutionizing how data is processed and analyzed, bringing computation closer to where data is generated. This paradigm shift reduces latency, bandwidth usage, and enhances privacy and security.\n\nAs 5G networks continue to expand globally, edge computing will become increasingly important. The combination of 5G's high bandwidth and low latency with edge computing's localized processing creates a powerful foundation for applications that require real-time data processing, such as autonomous vehicles, industrial automation, and augmented reality.",
		Published:   true,
		AuthorName:  "Sarah Johnson",
		AuthorImage: "https://randomuser.me/api/portraits/women/76.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1556761175-b413da4baf72?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.June, 15),
		CategoryID:  intPtr(1),
	},
	{
		ID:          2,
		Title:       "5 Essential Cybersecurity Measures Every Business Needs",
		Slug:        "essential-cybersecurity-measures",
		Excerpt:     "Learn about the critical security controls that can protect your organization from the most common cyber threats.",
		Content:     "In today's digital landscape, cybersecurity has become a critical concern for businesses of all sizes. With cyber threats growing in sophistication and frequency, organizations must implement robust security measures to protect their sensitive data and systems.\n\nMulti-factor authentication, endpoint protection, regular security awareness training, data encryption, and a comprehensive backup strategy form the baseline every organization should start from. Implementing these measures requires a strategic approach and ongoing commitment: cybersecurity is not a one-time project but a continuous process of assessment, implementation, and improvement.",
		Published:   true,
		AuthorName:  "David Rodriguez",
		AuthorImage: "https://randomuser.me/api/portraits/men/22.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.May, 28),
		CategoryID:  intPtr(3),
	},
	{
		ID:          3,
		Title:       "How AI is Transforming Customer Service Experiences",
		Slug:        "ai-transforming-customer-service",
		Excerpt:     "Discover how artificial intelligence is revolutionizing customer support through chatbots, sentiment analysis, and predictive service.",
		Content:     "Artificial intelligence is fundamentally transforming how businesses interact with their customers, creating more efficient, personalized, and responsive customer service experiences.\n\nOne of the most visible applications of AI in customer service is the rise of intelligent chatbots and virtual assistants. These AI-powered tools can handle routine inquiries, provide instant responses 24/7, and seamlessly escalate complex issues to human agents when necessary. Beyond chatbots, AI-powered sentiment analysis and predictive service let companies address emerging issues before they become widespread problems.",
		Published:   true,
		AuthorName:  "Emily Patel",
		AuthorImage: "https://randomuser.me/api/portraits/women/38.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1607798748738-b15c40d33d57?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.May, 10),
		CategoryID:  intPtr(4),
	},
	{
		ID:          4,
		Title:       "The Rise of Microservices Architecture in Modern Applications",
		Slug:        "microservices-architecture-modern-applications",
		Excerpt:     "Explore how microservices architecture is changing the way companies build and scale their applications, offering greater flexibility and resilience.",
		Content:     "Microservices architecture has emerged as a dominant approach to building complex, scalable, and resilient applications in today's fast-paced digital environment. Unlike traditional monolithic applications, microservices break down software into small, independent services that communicate through well-defined APIs.\n\nBy decomposing applications into smaller, focused services, development teams can work more independently, scale specific components based on demand, and isolate failures so that one bad service does not bring down the entire system. The trade-off is distributed-systems complexity: service discovery, inter-service communication, and data consistency all need deliberate investment in DevOps practice and monitoring.",
		Published:   true,
		AuthorName:  "Michael Chen",
		AuthorImage: "https://randomuser.me/api/portraits/men/32.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1561736778-92e52a7769ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.April, 22),
		CategoryID:  intPtr(5),
	},
	{
		ID:          5,
		Title:       "Securing the Cloud: Best Practices for Cloud Security in 2023",
		Slug:        "cloud-security-best-practices-2023",
		Excerpt:     "Learn the essential security measures and best practices for protecting your cloud infrastructure and data in today's evolving threat landscape.",
		Content:     "As organizations continue to migrate their infrastructure and workloads to the cloud, securing these environments has become more critical than ever. Cloud security requires a shared responsibility model between cloud providers and customers, with specific obligations for each party.\n\nThe foundation of robust cloud security begins with identity and access management: least privilege, mandatory multi-factor authentication, and just-in-time access for privileged accounts. Layer on encryption at rest and in transit, segmented networks, continuous monitoring, and regular security assessments, and the cloud becomes a place where sensitive workloads can safely run.",
		Published:   true,
		AuthorName:  "Jennifer Miller",
		AuthorImage: "https://randomuser.me/api/portraits/women/44.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.March, 15),
		CategoryID:  intPtr(2),
	},
	{
		ID:          6,
		Title:       "Implementing DevOps: Challenges and Solutions for Modern Development Teams",
		Slug:        "implementing-devops-challenges-solutions",
		Excerpt:     "Discover the common challenges organizations face when adopting DevOps practices and effective strategies to overcome them.",
		Content:     "DevOps has evolved from a buzzword to a fundamental approach for software delivery, enabling organizations to release high-quality applications faster and more reliably. However, implementing DevOps practices often comes with significant challenges that must be addressed to realize its full benefits.\n\nCultural resistance, technical complexity, legacy systems, and security integration are the usual suspects. Organizations that succeed despite them share certain characteristics: they start small with achievable goals, focus on continuous improvement, invest in automation, foster a learning culture, and maintain a relentless focus on delivering value to customers.",
		Published:   true,
		AuthorName:  "Robert Thompson",
		AuthorImage: "https://randomuser.me/api/portraits/men/68.jpg",
		CoverImage:  "https://images.unsplash.com/photo-1522071820081-009f0129c71c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		PublishedAt: date(2023, time.February, 25),
		CategoryID:  intPtr(5),
	},
}

var Services = []domain.Service{
	{ID: 1, Title: "Software Development", Description: "Custom software solutions tailored to your business needs, from web applications to mobile apps and enterprise systems.", Icon: "code", Slug: "software-development"},
	{ID: 2, Title: "Cloud Solutions", Description: "Scalable cloud infrastructure, migration services, and managed cloud solutions to optimize your business operations.", Icon: "cloud", Slug: "cloud-solutions"},
	{ID: 3, Title: "IT Consulting", Description: "Strategic technology advisory services to help you make informed decisions and maximize your IT investments.", Icon: "users", Slug: "it-consulting"},
	{ID: 4, Title: "Cybersecurity", Description: "Comprehensive security assessments, implementation, and monitoring to protect your business from evolving threats.", Icon: "shield", Slug: "cybersecurity"},
	{ID: 5, Title: "Data Analytics", Description: "Turn your data into actionable insights with our advanced analytics, business intelligence, and data visualization solutions.", Icon: "bar-chart", Slug: "data-analytics"},
	{ID: 6, Title: "AI & Machine Learning", Description: "Cutting-edge AI solutions that automate processes, predict trends, and enhance decision-making for your business.", Icon: "brain", Slug: "ai-machine-learning"},
}

var TeamMembers = []domain.TeamMember{
	{ID: 1, Name: "Michael Chen", Position: "Chief Executive Officer", Bio: "20+ years of experience in tech leadership and business transformation.", Image: "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80", LinkedIn: "https://linkedin.com", Twitter: "https://twitter.com"},
	{ID: 2, Name: "Sarah Johnson", Position: "Chief Technology Officer", Bio: "Former Google engineer with expertise in cloud architecture and AI.", Image: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80", LinkedIn: "https://linkedin.com", Twitter: "https://twitter.com"},
	{ID: 3, Name: "David Rodriguez", Position: "VP of Client Services", Bio: "Dedicated to building strong client relationships and delivering results.", Image: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80", LinkedIn: "https://linkedin.com", Twitter: "https://twitter.com"},
	{ID: 4, Name: "Emily Patel", Position: "Director of Innovation", Bio: "Leading our R&D efforts to bring cutting-edge solutions to market.", Image: "https://images.unsplash.com/photo-1580894732444-8ecded7900cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80", LinkedIn: "https://linkedin.com", Twitter: "https://twitter.com"},
}

var Projects = []domain.Project{
	{ID: 1, Title: "E-Commerce Platform Redesign", Description: "Completely redesigned the online shopping experience for a leading retailer, resulting in a 40% increase in conversions.", Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "Software Development", Technologies: []string{"React", "Node.js", "AWS"}},
	{ID: 2, Title: "Healthcare Data Migration", Description: "Migrated a healthcare provider's legacy systems to a secure cloud infrastructure, improving performance by 60%.", Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "Cloud Solutions", Technologies: []string{"Azure", "Kubernetes", "HIPAA"}},
	{ID: 3, Title: "Predictive Maintenance System", Description: "Developed an AI-powered system for a manufacturing company that predicts equipment failures before they occur.", Image: "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "AI & Machine Learning", Technologies: []string{"Python", "TensorFlow", "IoT"}},
	{ID: 4, Title: "Financial Services Mobile App", Description: "Created a secure mobile banking application with advanced features like biometric authentication and real-time notifications.", Image: "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "Software Development", Technologies: []string{"React Native", "Node.js", "MongoDB"}},
	{ID: 5, Title: "Enterprise Resource Planning System", Description: "Designed and implemented a custom ERP solution that integrated all departments and streamlined business processes.", Image: "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "Software Development", Technologies: []string{"Java", "Spring Boot", "PostgreSQL"}},
	{ID: 6, Title: "Cybersecurity Infrastructure Upgrade", Description: "Strengthened a financial institution's security posture with advanced threat detection and prevention systems.", Image: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Category: "Cybersecurity", Technologies: []string{"Palo Alto", "Splunk", "AWS Security"}},
}

var Testimonials = []domain.Testimonial{
	{ID: 1, Name: "Jennifer Miller", Position: "Marketing Director", Company: "Axon Enterprises", Content: "GodivaTech transformed our digital presence with a new website and custom CRM integration. Their team was professional, responsive, and delivered a solution that exceeded our expectations.", Image: "https://randomuser.me/api/portraits/women/32.jpg"},
	{ID: 2, Name: "Robert Thompson", Position: "CTO", Company: "HealthFirst", Content: "Working with GodivaTech on our cloud migration was a game-changer. They made a complex process seamless and helped us achieve significant cost savings while improving performance.", Image: "https://randomuser.me/api/portraits/men/32.jpg"},
	{ID: 3, Name: "Maria Sanchez", Position: "Operations Manager", Company: "Global Logistics", Content: "The custom software GodivaTech developed for our logistics operations has increased efficiency by 35%. Their ongoing support and continuous improvements have made them a valuable partner.", Image: "https://randomuser.me/api/portraits/women/28.jpg"},
}

// Apply loads the fixture content into Postgres. It is idempotent via
// ON CONFLICT upserts keyed on the fixture ids, and bumps each table's id
// sequence past the seeded maximum so later creates never reuse an id.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, c := range Categories {
		const q = `
INSERT INTO categories (id, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug
`
		if _, err := pool.Exec(ctx, q, c.ID, c.Name, c.Slug); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}

	for _, p := range BlogPosts {
		const q = `
INSERT INTO blog_posts (id, title, slug, excerpt, content, published, author_name, author_image, cover_image, published_at, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title,
    slug = EXCLUDED.slug,
    excerpt = EXCLUDED.excerpt,
    content = EXCLUDED.content,
    published = EXCLUDED.published,
    author_name = EXCLUDED.author_name,
    author_image = EXCLUDED.author_image,
    cover_image = EXCLUDED.cover_image,
    published_at = EXCLUDED.published_at,
    category_id = EXCLUDED.category_id
`
		_, err := pool.Exec(ctx, q, p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published,
			p.AuthorName, p.AuthorImage, p.CoverImage, p.PublishedAt, p.CategoryID)
		if err != nil {
			return fmt.Errorf("seed blog post %q: %w", p.Slug, err)
		}
	}

	for _, s := range Services {
		const q = `
INSERT INTO services (id, title, description, icon, slug)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, description = EXCLUDED.description, icon = EXCLUDED.icon, slug = EXCLUDED.slug
`
		if _, err := pool.Exec(ctx, q, s.ID, s.Title, s.Description, s.Icon, s.Slug); err != nil {
			return fmt.Errorf("seed service %q: %w", s.Slug, err)
		}
	}

	for _, m := range TeamMembers {
		const q = `
INSERT INTO team_members (id, name, position, bio, image, linkedin, twitter)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, position = EXCLUDED.position, bio = EXCLUDED.bio,
    image = EXCLUDED.image, linkedin = EXCLUDED.linkedin, twitter = EXCLUDED.twitter
`
		if _, err := pool.Exec(ctx, q, m.ID, m.Name, m.Position, m.Bio, m.Image, m.LinkedIn, m.Twitter); err != nil {
			return fmt.Errorf("seed team member %q: %w", m.Name, err)
		}
	}

	for _, p := range Projects {
		const q = `
INSERT INTO projects (id, title, description, image, category, technologies, link)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, description = EXCLUDED.description, image = EXCLUDED.image,
    category = EXCLUDED.category, technologies = EXCLUDED.technologies, link = EXCLUDED.link
`
		if _, err := pool.Exec(ctx, q, p.ID, p.Title, p.Description, p.Image, p.Category, p.Technologies, p.Link); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	for _, t := range Testimonials {
		const q = `
INSERT INTO testimonials (id, name, position, company, content, image)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, position = EXCLUDED.position, company = EXCLUDED.company,
    content = EXCLUDED.content, image = EXCLUDED.image
`
		if _, err := pool.Exec(ctx, q, t.ID, t.Name, t.Position, t.Company, t.Content, t.Image); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
		}
	}

	for _, table := range []string{"categories", "blog_posts", "services", "team_members", "projects", "testimonials"} {
		q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`, table, table)
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("bump %s id sequence: %w", table, err)
		}
	}

	return nil
}
