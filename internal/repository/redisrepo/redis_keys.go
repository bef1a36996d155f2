package redisrepo

import "fmt"

const (
	POST_KEY         = "post:%d"                  // <postID>
	AUTHOR_POSTS_KEY = "author:%s-posts:%d:%d"    // <authorID>:<limit>:<offset>
	USER_CACHE_KEY   = "user-cache:%s"            // <userID>
	CHAT_QUOTA_KEY   = "chat-quota:%s:%s"         // <userID>:<yyyy-mm-dd>
	TRENDING_KEY     = "trending-posts:%d:%d"     // <hours>:<limit>
)

func PostKey(postID int64) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func AuthorPostsKey(authorID string, limit int, offset int) string {
	return fmt.Sprintf(AUTHOR_POSTS_KEY, authorID, limit, offset)
}

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}

func ChatQuotaKey(userID string, day string) string {
	return fmt.Sprintf(CHAT_QUOTA_KEY, userID, day)
}

func TrendingKey(hours int, limit int) string {
	return fmt.Sprintf(TRENDING_KEY, hours, limit)
}
