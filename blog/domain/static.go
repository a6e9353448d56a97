package domain

// staticPosts is the fixed set of articles compiled into the site. The list
// and its order never change at runtime; dynamic posts that share a title
// with one of these shadow it in listings.
var staticPosts = []Post{
	{
		ID:       "venture-studio-trends",
		Title:    "The Future of Venture Studios in Consumer Brands",
		Excerpt:  "Exploring how venture studios are reshaping the landscape of consumer packaged goods and wellness brands.",
		Category: "Industry Insights",
		ReadTime: "5 min read",
		Date:     "Jan 15, 2025",
		Image:    "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop&q=80",
		Slug:     "venture-studio-trends",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Venture Studios", "CPG", "Innovation", "Consumer Brands"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        The consumer packaged goods (CPG) industry is undergoing a fundamental transformation, driven by changing consumer preferences, digital disruption, and the rise of direct-to-consumer models. At the heart of this evolution lies a new breed of venture studios that are redefining how consumer brands are built, launched, and scaled.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">The Traditional Model vs. Venture Studios</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Venture studios combine the speed and agility of startups with the resources and expertise of established corporations, creating an environment where breakthrough ideas can flourish and scale rapidly.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        The venture studio model represents a paradigm shift in how consumer brands are created and scaled. By combining the best aspects of startups and established companies, these organizations are well-positioned to lead the next wave of innovation in consumer goods.
      </p>
    `,
	},
	{
		ID:       "consumer-wellness",
		Title:    "Building Better-for-You Brands That Actually Work",
		Excerpt:  "Key strategies for creating consumer wellness brands that deliver real value and sustainable growth.",
		Category: "Brand Strategy",
		ReadTime: "7 min read",
		Date:     "Jan 12, 2025",
		Image:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&q=80",
		Slug:     "building-better-for-you-brands",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Wellness", "Brand Strategy", "Consumer Health", "Authenticity"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        The wellness industry has exploded in recent years, with consumers increasingly seeking products that not only promise health benefits but actually deliver on those promises. Building a successful "better-for-you" brand demands strategic thinking, authentic messaging, and genuine product efficacy.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Understanding the Modern Consumer</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Today's consumers are more educated and skeptical than ever before. They're demanding transparency, authenticity, and real results from the brands they choose to support.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        By focusing on science, transparency, and authentic connections with consumers, brands can create lasting value in the competitive wellness market.
      </p>
    `,
	},
	{
		ID:       "cultural-insights",
		Title:    "Bridging Eastern and Western Consumer Insights",
		Excerpt:  "How cultural intelligence drives innovation in global consumer brand development and market expansion.",
		Category: "Global Strategy",
		ReadTime: "6 min read",
		Date:     "Jan 10, 2025",
		Image:    "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=800&q=80",
		Slug:     "bridging-eastern-western-insights",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Global Strategy", "Cultural Intelligence", "Market Expansion", "Consumer Insights"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        In an increasingly connected world, the most successful consumer brands are those that can navigate and bridge cultural differences. Understanding both Eastern and Western consumer mindsets has become a critical competitive advantage in global brand development.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Cultural Intelligence as Strategy</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Cultural intelligence goes beyond translation. It means understanding how values, habits, and aspirations differ across markets, and building products and messaging that resonate authentically in each.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Brands that invest in genuine cultural understanding will find themselves uniquely positioned to win in global markets.
      </p>
    `,
	},
	{
		ID:       "sustainable-packaging",
		Title:    "The Rise of Sustainable Packaging in CPG",
		Excerpt:  "How innovative packaging solutions are driving consumer adoption and brand differentiation in the competitive CPG landscape.",
		Category: "Sustainability",
		ReadTime: "8 min read",
		Date:     "Jan 8, 2025",
		Image:    "https://images.unsplash.com/photo-1604719312566-8912e9227c6a?w=800&q=80",
		Slug:     "sustainable-packaging-cpg",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Sustainability", "Packaging", "CPG", "Environmental Impact"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Sustainable packaging has moved from a nice-to-have to a core expectation among consumers. Brands that lead on packaging innovation are seeing measurable gains in loyalty and differentiation.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Beyond Recyclability</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        The frontier of sustainable packaging extends past recyclable materials into compostable films, refill systems, and packaging designed for reuse from the start.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Packaging is now a brand statement. The companies that treat it as a product feature rather than an afterthought will define the next era of CPG.
      </p>
    `,
	},
	{
		ID:       "digital-marketing",
		Title:    "Digital Marketing Strategies for Modern Consumer Brands",
		Excerpt:  "Leveraging social media, influencer partnerships, and data-driven approaches to build authentic brand connections.",
		Category: "Digital Marketing",
		ReadTime: "9 min read",
		Date:     "Jan 5, 2025",
		Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&q=80",
		Slug:     "digital-marketing-consumer-brands",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Digital Marketing", "Social Media", "Influencer Marketing", "Brand Strategy"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        The digital marketing landscape for consumer brands has never been more complex or more full of opportunity. Winning brands combine social platforms, creator partnerships, and first-party data into a coherent growth engine.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Authenticity Over Reach</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Audiences reward brands that show up authentically. Micro-influencer partnerships and community-led content consistently outperform broad, impersonal campaigns.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Data-driven doesn't mean impersonal. The brands that pair measurement discipline with genuine community building will own the next decade of consumer attention.
      </p>
    `,
	},
	{
		ID:       "supply-chain",
		Title:    "Building Resilient Supply Chains for Consumer Brands",
		Excerpt:  "Strategies for creating robust, transparent, and efficient supply chains that support brand growth and consumer trust.",
		Category: "Operations",
		ReadTime: "7 min read",
		Date:     "Jan 3, 2025",
		Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
		Slug:     "resilient-supply-chains",
		Author:   "Adaptive Kitchen Team",
		Tags:     []string{"Supply Chain", "Operations", "Risk Management", "Transparency"},
		Content: `
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Recent years have exposed how fragile global supply chains can be. For consumer brands, supply chain resilience is no longer an operations detail but a survival requirement and a trust signal.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Diversification and Visibility</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Resilient brands build redundancy into sourcing, invest in end-to-end visibility, and communicate openly with consumers about where products come from.
      </p>

      <h2 class="text-2xl font-bold mb-4 text-gray-900">Conclusion</h2>
      <p class="mb-6 text-lg leading-relaxed text-gray-700">
        Supply chains that bend without breaking protect both margins and reputation. Transparency turns an operational necessity into a brand asset.
      </p>
    `,
	},
}

// StaticPosts returns a copy of the compiled-in post list. Callers may reorder
// or filter the returned slice freely.
func StaticPosts() []Post {
	out := make([]Post, len(staticPosts))
	copy(out, staticPosts)
	return out
}
