package content

// The query catalog. Every query declares exactly the fields its page
// needs, including expansions of referenced records, so typed results
// stay consistent. The strings are opaque to the rest of the app and
// sent verbatim to the store.

const cardFields = `
	_id,
	title,
	slug,
	excerpt,
	topics,
	mainImage,
	publishedAt
`

const AllGuidesQuery = `
	*[_type == "guide"] | order(publishedAt desc) {` + cardFields + `}
`

const SingleGuideQuery = `
	*[_type == "guide" && slug.current == $slug][0] {` + cardFields + `,
		body,
		seo,
		"relatedArticles": relatedArticles[]-> {` + cardFields + `}
	}
`

const AllPostsQuery = `
	*[_type == "post"] | order(publishedAt desc) {` + cardFields + `,
		"author": author-> { _id, name, role, image }
	}
`

const SinglePostQuery = `
	*[_type == "post" && slug.current == $slug][0] {` + cardFields + `,
		body,
		seo,
		"author": author-> { _id, name, role, image },
		"relatedPosts": relatedPosts[]-> {` + cardFields + `}
	}
`

const AllNewsQuery = `
	*[_type == "newsArticle"] | order(publishedAt desc) {` + cardFields + `,
		source
	}
`

const SingleNewsQuery = `
	*[_type == "newsArticle" && slug.current == $slug][0] {` + cardFields + `,
		body,
		seo,
		source
	}
`

const AllWhitePapersQuery = `
	*[_type == "whitePaper"] | order(publishedAt desc) {` + cardFields + `,
		abstract,
		downloadUrl
	}
`

const SingleWhitePaperQuery = `
	*[_type == "whitePaper" && slug.current == $slug][0] {` + cardFields + `,
		body,
		seo,
		abstract,
		downloadUrl
	}
`

const AllEventsQuery = `
	*[_type == "event"] | order(date desc) {
		_id,
		title,
		slug,
		excerpt,
		date,
		endDate,
		location,
		online,
		featured,
		mainImage
	}
`

const SingleEventQuery = `
	*[_type == "event" && slug.current == $slug][0] {
		_id,
		title,
		slug,
		excerpt,
		body,
		seo,
		date,
		endDate,
		location,
		online,
		registrationUrl,
		featured,
		mainImage,
		"speakers": speakers[]-> { _id, name, role, bio, image, linkedinUrl }
	}
`

const TeamQuery = `
	*[_type == "teamMember" && advisoryBoard != true] | order(name asc) {
		_id, name, role, bio, image, linkedinUrl, advisoryBoard
	}
`

const AdvisoryBoardQuery = `
	*[_type == "teamMember" && advisoryBoard == true] | order(name asc) {
		_id, name, role, bio, image, linkedinUrl, advisoryBoard
	}
`

const SiteSettingsQuery = `
	*[_type == "siteSettings"][0] {
		siteName, tagline, contactEmail, contactPhone, address, socialImage
	}
`

// Top-N queries for the landing pages

const RecentGuidesQuery = `
	*[_type == "guide"] | order(publishedAt desc) [0...3] {` + cardFields + `}
`

const RecentPostsQuery = `
	*[_type == "post"] | order(publishedAt desc) [0...3] {` + cardFields + `}
`

const RecentNewsQuery = `
	*[_type == "newsArticle"] | order(publishedAt desc) [0...4] {` + cardFields + `}
`

const RecentWhitePapersQuery = `
	*[_type == "whitePaper"] | order(publishedAt desc) [0...3] {` + cardFields + `,
		abstract
	}
`

const UpcomingEventsQuery = `
	*[_type == "event" && date >= now()] | order(date asc) [0...3] {
		_id, title, slug, excerpt, date, endDate, location, online, featured, mainImage
	}
`

// Feed queries only consider published records

const FeedPostsQuery = `
	*[_type == "post" && defined(publishedAt)]
		| order(publishedAt desc) [0...$limit] {` + cardFields + `}
`

const FeedNewsQuery = `
	*[_type == "newsArticle" && defined(publishedAt)]
		| order(publishedAt desc) [0...$limit] {` + cardFields + `, source}
`

// Sitemap queries return slugs and timestamps per published record

// Cheapest possible round trip, used by the health endpoint
const HealthQuery = `count(*[_id == "siteSettings"])`

const SitemapQuery = `
	{
		"guides": *[_type == "guide" && defined(publishedAt)] { slug, publishedAt },
		"posts": *[_type == "post" && defined(publishedAt)] { slug, publishedAt },
		"news": *[_type == "newsArticle" && defined(publishedAt)] { slug, publishedAt },
		"whitePapers": *[_type == "whitePaper" && defined(publishedAt)] { slug, publishedAt },
		"events": *[_type == "event" && defined(date)] { slug, "publishedAt": date }
	}
`
