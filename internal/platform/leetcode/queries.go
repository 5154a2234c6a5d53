package leetcode

const recentAcSubmissionsQuery = `
query recentAcSubmissions($username: String!, $limit: Int!) {
    recentAcSubmissionList(username: $username, limit: $limit) {
        titleSlug
        timestamp
    }
}
`

const questionDataQuery = `
query questionData($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionId
        title
        titleSlug
        difficulty
        similarQuestions
        topicTags {
            name
        }
    }
}
`
