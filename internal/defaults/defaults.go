// Package defaults holds the compiled-in site content used whenever the
// remote backend and the local cache are both unavailable.
package defaults

import "github.com/linoawt/Linostudiong/internal/models"

// Config returns a fresh copy of the bundled SiteConfig. Callers may mutate
// the result freely.
func Config() *models.SiteConfig {
	return bundled.Clone()
}

var bundled = &models.SiteConfig{
	SiteName:     "Lino Studio NG",
	Tagline:      "Designing Identity. Building Reality.",
	HeroHeadline: "We Craft Brands & Build Digital Experiences",
	HeroSubtext:  "A design and development studio helping businesses stand out with bold visual identity and modern web technology.",
	ContactEmail: "linostudiong@gmail.com",
	ContactPhone: "+234 XXX XXX XXXX",
	Location:     "Yenagoa, Bayelsa State, Nigeria",
	InstagramURL: "https://instagram.com/linostudiong",
	LinkedInURL:  "https://linkedin.com/company/linostudiong",
	Theme:        models.ThemeLight,
	CouponPrefix: "LINO-",
	SEO: models.SEO{
		MetaTitle:       "Lino Studio NG | Graphic Design & Web Development",
		MetaDescription: "Graphic design, brand identity and web development studio based in Nigeria, working with clients worldwide.",
		Keywords:        "graphic design, web development, branding, nigeria",
	},

	Projects: []models.Project{
		{ID: "1", Title: "NeoBank App", Category: models.CategoryWebDevelopment, Thumbnail: "https://picsum.photos/600/400?random=1", Description: "Financial tech platform."},
		{ID: "2", Title: "Urban Bloom Branding", Category: models.CategoryGraphicDesign, Thumbnail: "https://picsum.photos/600/400?random=2", Description: "Visual identity for floral boutique."},
		{ID: "3", Title: "Fitness Tracker", Category: models.CategoryWebDevelopment, Thumbnail: "https://picsum.photos/600/400?random=3", Description: "Health monitoring dashboard."},
		{ID: "4", Title: "E-Commerce Visuals", Category: models.CategoryGraphicDesign, Thumbnail: "https://picsum.photos/600/400?random=4", Description: "Product marketing assets."},
		{ID: "5", Title: "Crypto Dashboard", Category: models.CategoryWebDevelopment, Thumbnail: "https://picsum.photos/600/400?random=5", Description: "Live crypto trading UI."},
		{ID: "6", Title: "Organic Juice Packaging", Category: models.CategoryGraphicDesign, Thumbnail: "https://picsum.photos/600/400?random=6", Description: "Sustainable packaging design."},
	},

	Services: []models.Service{
		{ID: "1", Title: "Graphic Design", Icon: "🎨", Description: "Visual identities that make your brand unforgettable.", Items: []string{"Logo & brand identity", "Print & packaging design", "Marketing assets"}},
		{ID: "2", Title: "Web Development", Icon: "💻", Description: "Fast, modern websites and web applications.", Items: []string{"Responsive websites", "E-commerce stores", "Custom dashboards"}},
		{ID: "3", Title: "Brand Strategy", Icon: "✨", Description: "Positioning and messaging that connects with your audience.", Items: []string{"Brand audits", "Naming & messaging", "Launch support"}},
	},

	Skills: []models.Skill{
		{Name: "Branding", Level: 90, Category: models.SkillDesign},
		{Name: "Logo Design", Level: 95, Category: models.SkillDesign},
		{Name: "Illustration", Level: 80, Category: models.SkillDesign},
		{Name: "Print Design", Level: 85, Category: models.SkillDesign},
		{Name: "HTML/CSS", Level: 95, Category: models.SkillDevelopment},
		{Name: "JavaScript", Level: 85, Category: models.SkillDevelopment},
		{Name: "Node.js", Level: 75, Category: models.SkillDevelopment},
		{Name: "PHP", Level: 80, Category: models.SkillDevelopment},
		{Name: "Git/GitHub", Level: 85, Category: models.SkillDevelopment},
	},

	FAQs: []models.FAQItem{
		{Question: "What services do you offer?", Answer: "We provide comprehensive graphic design, full brand identity development, and end-to-end web development using modern stacks like React, Node.js, and PHP."},
		{Question: "Do you work with clients outside Nigeria?", Answer: "Absolutely! We work with clients globally using video conferencing and collaborative tools like Slack, Figma, and GitHub."},
		{Question: "How long does a project take?", Answer: "Timelines depend on the project's complexity. A logo or flyer might take 3 days, while a full-scale web application can take 2-4 weeks."},
		{Question: "Do you offer revisions?", Answer: "Yes, revisions are a core part of our process. Each pricing plan includes a specific number of rounds to ensure you are 100% satisfied."},
		{Question: "What tools do you use?", Answer: "For design, we use Figma, Photoshop, and Illustrator. For development, we leverage HTML5, Tailwind CSS, JavaScript, React, and various backend technologies."},
		{Question: "How can I start?", Answer: "The easiest way is to use the contact form below or send us an email directly at linostudiong@gmail.com."},
	},

	Plans: []models.PricingPlan{
		{Name: "Starter", Price: "$299", Features: []string{"Basic design or landing page", "Quick turnaround (3-5 days)", "Email support", "1 Revision included"}},
		{Name: "Professional", Price: "$799", Highlighted: true, Features: []string{"Full branding or website", "Responsive modern design", "3 Revisions included", "Basic SEO optimization", "Priority support"}},
		{Name: "Premium", Price: "$1,499", Features: []string{"Full brand + web solution", "E-commerce or custom dashboard", "Ongoing technical support", "Advanced SEO & performance", "Unlimited revisions"}},
	},

	Testimonials: []models.Testimonial{
		{ID: "1", Quote: "Lino Studio NG delivered beyond expectations. Clean design, fast delivery, and excellent communication throughout the process.", Author: "Samuel Peterson", Role: "CEO, TechFlow Nigeria"},
		{ID: "2", Quote: "Professional, creative, and reliable. They understood our brand vision perfectly and translated it into a stunning digital presence.", Author: "Adaobi Okafor", Role: "Marketing Lead, Urban Bloom"},
		{ID: "3", Quote: "The web application they built for us is not only visually beautiful but performs flawlessly. Truly a top-tier studio.", Author: "Johnathan Smith", Role: "Founder, Zenith Hub"},
	},
}
