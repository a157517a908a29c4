package ratelimit

import "github.com/redis/go-redis/v9"

// tokenBucketScript refills and deducts atomically. A bucket that does not
// exist yet starts full.
//
// KEYS[1] bucket hash
// ARGV[1] max tokens (capacity + burst)
// ARGV[2] refill rate, tokens per second
// ARGV[3] now, unix milliseconds
// ARGV[4] cost
//
// Returns {allowed(0|1), remaining tokens as string, retry-after ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local max_tokens = tonumber(ARGV[1])
local refill = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local cost = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = max_tokens
  ts = now
end

local elapsed = (now - ts) / 1000.0
if elapsed > 0 then
  tokens = math.min(max_tokens, tokens + elapsed * refill)
end

local allowed = 0
local retry_ms = 0
if tokens >= cost then
  tokens = tokens - cost
  allowed = 1
elseif refill > 0 then
  retry_ms = math.ceil((cost - tokens) / refill * 1000)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', now)
local ttl = 60000
if refill > 0 then
  ttl = ttl + math.ceil(max_tokens / refill * 1000)
end
redis.call('PEXPIRE', key, ttl)

return {allowed, tostring(tokens), retry_ms}
`)
