package github

const viewerQuery = `query {
  viewer {
    login
    id
  }
}`

const contributedReposQuery = `query($login: String!) {
  user(login: $login) {
    repositoriesContributedTo(last: 100, includeUserRepositories: true) {
      nodes {
        isFork
        name
        owner {
          login
        }
      }
    }
  }
}`

const commitHistoryQuery = `query($owner: String!, $name: String!, $id: ID!) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: 100, author: { id: $id }) {
            edges {
              node {
                committedDate
              }
            }
          }
        }
      }
    }
  }
}`

// ViewerQuery asks for the login and node id of the token's owner.
func ViewerQuery() Request {
	return Request{Query: viewerQuery}
}

// ContributedReposQuery lists repositories login contributed to, with fork flags.
func ContributedReposQuery(login string) Request {
	return Request{
		Query:     contributedReposQuery,
		Variables: map[string]interface{}{"login": login},
	}
}

// CommitHistoryQuery asks for commit dates authored by id on the default
// branch of owner/name.
func CommitHistoryQuery(id, name, owner string) Request {
	return Request{
		Query: commitHistoryQuery,
		Variables: map[string]interface{}{
			"owner": owner,
			"name":  name,
			"id":    id,
		},
	}
}
