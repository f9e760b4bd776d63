package prompt

// RecommendPrompt asks for similar movies and pins the output to a JSON shape.
// Args: comma-joined titles, recommendation count.
const RecommendPrompt = `Based on these movies: %s, recommend %d similar movies.
For each recommendation, provide:
1. The movie title
2. A detailed explanation of why it's recommended based on the input movies

Format your response exactly like this example:
{
    "recommendations": [
        {
            "movie_title": "Example Movie",
            "why_recommended": "Detailed explanation of why this movie would appeal to fans of the input movies..."
        }
    ]
}

Make each recommendation unique and detailed. Focus on themes, style, and connections to the input movies.
`

// TitleSeparator joins input titles inside the prompt
const TitleSeparator = ", "
